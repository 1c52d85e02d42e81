package cartridge

import (
	"fmt"
	"os"
)

// ROM holds the parsed contents of an iNES image: the immutable PRG/CHR
// banks plus enough header metadata for a mapper to configure itself.
type ROM struct {
	MapperID  uint16
	Mirroring Mirroring
	Battery   bool
	PRG       []byte // immutable; read-only view into the cartridge
	CHR       []byte // empty when the board uses CHR-RAM
	HasCHRRAM bool
}

// Load reads and parses an iNES v1 ROM image from path. Trainer data, if
// present, is skipped: this core does not expose it.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: couldn't read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an in-memory iNES image. Exported separately from Load so
// that test ROMs can be constructed and loaded without touching the
// filesystem.
func Parse(data []byte) (*ROM, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("cartridge: file too small to contain a header (%d bytes)", len(data))
	}

	h, err := parseHeader(data[:headerSize])
	if err != nil {
		return nil, err
	}

	offset := headerSize
	if h.hasTrainer() {
		offset += trainerSize
	}

	prgLen := int(h.prgBanks) * prgBankSize
	if prgLen == 0 {
		return nil, fmt.Errorf("cartridge: ROM declares zero PRG banks")
	}
	if offset+prgLen > len(data) {
		return nil, fmt.Errorf("cartridge: truncated PRG-ROM (need %d bytes, have %d)", prgLen, len(data)-offset)
	}
	prg := make([]byte, prgLen)
	copy(prg, data[offset:offset+prgLen])
	offset += prgLen

	chrLen := int(h.chrBanks) * chrBankSize
	hasCHRRAM := chrLen == 0
	var chr []byte
	if hasCHRRAM {
		chr = make([]byte, chrBankSize) // CHR-RAM: 8 KiB, mutable, starts zeroed
	} else {
		if offset+chrLen > len(data) {
			return nil, fmt.Errorf("cartridge: truncated CHR-ROM (need %d bytes, have %d)", chrLen, len(data)-offset)
		}
		chr = make([]byte, chrLen)
		copy(chr, data[offset:offset+chrLen])
	}

	return &ROM{
		MapperID:  h.mapperID(),
		Mirroring: h.mirroring(),
		Battery:   h.hasBattery(),
		PRG:       prg,
		CHR:       chr,
		HasCHRRAM: hasCHRRAM,
	}, nil
}

// PRGBanks16K returns the number of 16 KiB PRG banks in the cartridge.
func (r *ROM) PRGBanks16K() int {
	return len(r.PRG) / prgBankSize
}

// CHRBanks8K returns the number of 8 KiB CHR banks in the cartridge.
func (r *ROM) CHRBanks8K() int {
	return len(r.CHR) / chrBankSize
}
