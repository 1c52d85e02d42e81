package ppu

// CPU-visible register offsets, mirrored every 8 bytes across
// $2000-$3FFF; OAMDMA lives on the CPU bus at $4014, not here.
const (
	RegCtrl   = 0
	RegMask   = 1
	RegStatus = 2
	RegOAMAddr = 3
	RegOAMData = 4
	RegScroll = 5
	RegAddr   = 6
	RegData   = 7
)

// PPUCTRL ($2000) bit flags.
const (
	ctrlNametableX    = 1 << 0
	ctrlNametableY    = 1 << 1
	ctrlIncrement32   = 1 << 2
	ctrlSpritePattern = 1 << 3
	ctrlBGPattern     = 1 << 4
	ctrlSpriteSize16  = 1 << 5
	ctrlMasterSlave   = 1 << 6
	ctrlNMIEnable     = 1 << 7
)

// PPUMASK ($2001) bit flags.
const (
	maskGrayscale     = 1 << 0
	maskShowBGLeft    = 1 << 1
	maskShowSpriteLeft = 1 << 2
	maskShowBG        = 1 << 3
	maskShowSprites   = 1 << 4
	maskEmphasizeR    = 1 << 5
	maskEmphasizeG    = 1 << 6
	maskEmphasizeB    = 1 << 7
)

// PPUSTATUS ($2002) bit flags; bits 0-4 are open-bus.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

// loopy is the 15-bit v/t scroll register pair from the nesdev "Loopy"
// scrolling writeup, shared layout for both the current and temporary
// VRAM address:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarseX() uint16    { return uint16(l) & 0x001F }
func (l loopy) coarseY() uint16    { return (uint16(l) & 0x03E0) >> 5 }
func (l loopy) nametable() uint16  { return (uint16(l) & 0x0C00) >> 10 }
func (l loopy) fineY() uint16      { return (uint16(l) & 0x7000) >> 12 }
func (l loopy) nametableAddr() uint16 {
	return 0x2000 | (uint16(l) & 0x0FFF)
}

func (l *loopy) setCoarseX(n uint16) { *l = loopy((uint16(*l) &^ 0x001F) | (n & 0x1F)) }
func (l *loopy) setCoarseY(n uint16) { *l = loopy((uint16(*l) &^ 0x03E0) | ((n & 0x1F) << 5)) }
func (l *loopy) setFineY(n uint16)   { *l = loopy((uint16(*l) &^ 0x7000) | ((n & 0x07) << 12)) }

func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		*l = loopy(uint16(*l) &^ 0x001F ^ 0x0400) // wrap to 0, flip nametable X
		return
	}
	*l = loopy(uint16(*l) + 1)
}

func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		l.setFineY(l.fineY() + 1)
		return
	}
	l.setFineY(0)
	switch l.coarseY() {
	case 29:
		l.setCoarseY(0)
		*l = loopy(uint16(*l) ^ 0x0800) // flip nametable Y
	case 31:
		l.setCoarseY(0) // attribute-table area read as tiles: wrap without flipping
	default:
		l.setCoarseY(l.coarseY() + 1)
	}
}
