// Command nesview is a windowed front-end for the headless nescore
// façade: it polls the keyboard into a controller byte every tick,
// steps one frame, and blits the resulting RGB buffer into an ebiten
// window. It is adapted from the teacher's console.Bus (Draw/Layout/
// Update) and console/controller.go's key mapping, rewired to drive
// nescore.Emulator instead of holding the CPU/PPU directly; ebiten
// stays confined to this command so the emulated machine itself is
// headless, per spec's scope boundary.
package main

import (
	"flag"
	"image/color"
	"log"

	"nescore"

	"github.com/hajimehoshi/ebiten/v2"
)

var romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")

// keys mirrors the teacher's console/controller.go mapping, in the
// same A/B/Select/Start/Up/Down/Left/Right bit order spec.md §6.2
// defines for the controller byte.
var keys = []struct {
	key    ebiten.Key
	button uint8
}{
	{ebiten.KeyA, nescore.ButtonA},
	{ebiten.KeyB, nescore.ButtonB},
	{ebiten.KeySpace, nescore.ButtonSelect},
	{ebiten.KeyEnter, nescore.ButtonStart},
	{ebiten.KeyUp, nescore.ButtonUp},
	{ebiten.KeyDown, nescore.ButtonDown},
	{ebiten.KeyLeft, nescore.ButtonLeft},
	{ebiten.KeyRight, nescore.ButtonRight},
}

// game adapts an *nescore.Emulator to the ebiten.Game interface.
type game struct {
	emu   *nescore.Emulator
	frame []byte
}

func newGame(emu *nescore.Emulator) *game {
	return &game{emu: emu}
}

func pollController() uint8 {
	var v uint8
	for _, k := range keys {
		if ebiten.IsKeyPressed(k.key) {
			v |= k.button
		}
	}
	return v
}

// Update steps exactly one frame per ebiten tick (~60Hz), matching the
// NES's own frame rate one-for-one rather than the teacher's free-running
// goroutine, since the façade's Step is synchronous.
func (g *game) Update() error {
	// Step returns ErrCrashed once JAMed; Draw flags that state instead
	// of tearing down the window, so the error is intentionally ignored
	// here.
	frame, _ := g.emu.Step(1, pollController())
	g.frame = frame
	return nil
}

// Layout returns the NES's fixed resolution; ebiten scales the window
// to fit around it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nescore.FrameWidth, nescore.FrameHeight
}

// Draw blits the façade's packed-RGB frame buffer into the screen
// image pixel by pixel, the same approach the teacher's console.Bus.Draw
// uses against its own PPU pixel buffer.
func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	for y := 0; y < nescore.FrameHeight; y++ {
		for x := 0; x < nescore.FrameWidth; x++ {
			i := y*nescore.FrameStride + x*3
			screen.Set(x, y, color.RGBA{g.frame[i], g.frame[i+1], g.frame[i+2], 0xFF})
		}
	}
	if g.emu.HasCrashed() {
		screen.Set(0, 0, color.RGBA{0xFF, 0, 0, 0xFF}) // CPU jammed: flag with a red corner pixel
	}
}

func main() {
	flag.Parse()

	emu, err := nescore.Open(*romFile)
	if err != nil {
		log.Fatalf("Couldn't open %q: %v", *romFile, err)
	}

	ebiten.SetWindowSize(nescore.FrameWidth*2, nescore.FrameHeight*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(emu)); err != nil {
		log.Fatal(err)
	}
}
