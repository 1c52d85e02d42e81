package ppu

// systemPalette is the canonical 64-entry NTSC 2C02 RGB palette, the
// same values the teacher's ppu package shipped, reproduced here as
// packed RGB rather than a slice-per-entry so PPU snapshotting and
// frame-buffer conversion stay allocation-free.
var systemPalette = [64][3]uint8{
	{0x80, 0x80, 0x80}, {0x00, 0x3D, 0xA6}, {0x00, 0x12, 0xB0}, {0x44, 0x00, 0x96}, {0xA1, 0x00, 0x5E},
	{0xC7, 0x00, 0x28}, {0xBA, 0x06, 0x00}, {0x8C, 0x17, 0x00}, {0x5C, 0x2F, 0x00}, {0x10, 0x45, 0x00},
	{0x05, 0x4A, 0x00}, {0x00, 0x47, 0x2E}, {0x00, 0x41, 0x66}, {0x00, 0x00, 0x00}, {0x05, 0x05, 0x05}, {0x05, 0x05, 0x05},
	{0xC7, 0xC7, 0xC7}, {0x00, 0x77, 0xFF}, {0x21, 0x55, 0xFF}, {0x82, 0x37, 0xFA}, {0xEB, 0x2F, 0xB5},
	{0xFF, 0x29, 0x50}, {0xFF, 0x22, 0x00}, {0xD6, 0x32, 0x00}, {0xC4, 0x62, 0x00}, {0x35, 0x80, 0x00},
	{0x05, 0x8F, 0x00}, {0x00, 0x8A, 0x55}, {0x00, 0x99, 0xCC}, {0x21, 0x21, 0x21}, {0x09, 0x09, 0x09}, {0x09, 0x09, 0x09},
	{0xFF, 0xFF, 0xFF}, {0x0F, 0xD7, 0xFF}, {0x69, 0xA2, 0xFF}, {0xD4, 0x80, 0xFF}, {0xFF, 0x45, 0xF3},
	{0xFF, 0x61, 0x8B}, {0xFF, 0x88, 0x33}, {0xFF, 0x9C, 0x12}, {0xFA, 0xBC, 0x20}, {0x9F, 0xE3, 0x0E},
	{0x2B, 0xF0, 0x35}, {0x0C, 0xF0, 0xA4}, {0x05, 0xFB, 0xFF}, {0x5E, 0x5E, 0x5E}, {0x0D, 0x0D, 0x0D}, {0x0D, 0x0D, 0x0D},
	{0xFF, 0xFF, 0xFF}, {0xA6, 0xFC, 0xFF}, {0xB3, 0xEC, 0xFF}, {0xDA, 0xAB, 0xEB}, {0xFF, 0xA8, 0xF9},
	{0xFF, 0xAB, 0xB3}, {0xFF, 0xD2, 0xB0}, {0xFF, 0xEF, 0xA6}, {0xFF, 0xF7, 0x9C}, {0xD7, 0xE8, 0x95},
	{0xA6, 0xED, 0xAF}, {0xA2, 0xF2, 0xDA}, {0x99, 0xFF, 0xFC}, {0xDD, 0xDD, 0xDD}, {0x11, 0x11, 0x11}, {0x11, 0x11, 0x11},
}

// emphasisDarken approximates the 2C02's color-emphasis behavior: each
// asserted emphasis bit (R/G/B, PPUMASK bits 5-7) dims the channels it
// does not correspond to, rather than brightening its own. NTSC PPUs
// darken; the exact non-linear transform varies per revision, so this
// uses the commonly cited flat attenuation factor.
func emphasisDarken(rgb [3]uint8, emphasizeR, emphasizeG, emphasizeB bool) [3]uint8 {
	if !emphasizeR && !emphasizeG && !emphasizeB {
		return rgb
	}
	out := rgb
	const factor = 0.816
	if emphasizeR {
		out[1] = uint8(float64(out[1]) * factor)
		out[2] = uint8(float64(out[2]) * factor)
	}
	if emphasizeG {
		out[0] = uint8(float64(out[0]) * factor)
		out[2] = uint8(float64(out[2]) * factor)
	}
	if emphasizeB {
		out[0] = uint8(float64(out[0]) * factor)
		out[1] = uint8(float64(out[1]) * factor)
	}
	return out
}
