// Command nescore is a headless runner for the NES core: it drives a
// ROM through the RAM-output test harness protocol (spec.md §8.2) or
// simply steps a fixed frame count, logging the result to stderr. It
// is adapted from gintendo.go's flag-driven entry point, trading the
// ebiten game loop for a direct call into the headless nescore façade.
package main

import (
	"flag"
	"log"

	"nescore"
)

var (
	romFile    = flag.String("nes_rom", "", "Path to NES ROM to run.")
	maxFrames  = flag.Int("max_frames", 3000, "Give up after this many frames without a result (testrom mode) or run exactly this many frames otherwise.")
	testROM    = flag.Bool("testrom", false, "Run the $6000 RAM-output test-ROM protocol instead of a fixed frame count.")
	controller = flag.Uint("controller", 0, "Controller byte to hold for every frame (bit mask; see nescore.Button* constants).")
)

func main() {
	flag.Parse()

	emu, err := nescore.Open(*romFile)
	if err != nil {
		log.Fatalf("Couldn't open %q: %v", *romFile, err)
	}

	if *testROM {
		runTestROM(emu)
		return
	}

	if _, err := emu.Step(*maxFrames, uint8(*controller)); err != nil {
		log.Fatalf("Crashed after %d frames: %v", *maxFrames, err)
	}
	log.Printf("Ran %d frames without crashing.", *maxFrames)
}

// runTestROM implements the RAM-output harness protocol: wait for the
// $DE,$B0,$61 magic at $6001-$6003, then step while $6000==$80,
// re-running 10 frames and resetting if it reads $81, until $6000
// settles on a final value (0 == pass).
func runTestROM(emu *nescore.Emulator) {
	for frame := 0; frame < *maxFrames; frame++ {
		if _, err := emu.Step(1, 0); err != nil {
			log.Fatalf("Crashed at frame %d: %v", frame, err)
		}

		b1, _ := emu.Read(0x6001)
		b2, _ := emu.Read(0x6002)
		b3, _ := emu.Read(0x6003)
		if b1 != 0xDE || b2 != 0xB0 || b3 != 0x61 {
			continue
		}

		status, _ := emu.Read(0x6000)
		switch status {
		case 0x80:
			continue
		case 0x81:
			for i := 0; i < 10; i++ {
				if _, err := emu.Step(1, 0); err != nil {
					log.Fatalf("Crashed during reset wait: %v", err)
				}
			}
			emu.Reset()
			continue
		default:
			if status == 0 {
				log.Printf("PASS at frame %d: %s", frame, readMessage(emu))
			} else {
				log.Fatalf("FAIL (status=%#02x) at frame %d: %s", status, frame, readMessage(emu))
			}
			return
		}
	}
	log.Fatalf("No result within %d frames.", *maxFrames)
}

// readMessage reads the zero-terminated ASCII status string the test
// ROM writes starting at $6004.
func readMessage(emu *nescore.Emulator) string {
	var msg []byte
	for addr := uint16(0x6004); addr < 0x7FFF; addr++ {
		v, err := emu.Read(addr)
		if err != nil || v == 0 {
			break
		}
		msg = append(msg, v)
	}
	return string(msg)
}
