package main

// Demonstration code for using github.com/strudelaudio/knobkit in Go.
//
// This opens a window with a parameter knob on the left and a gauge
// knob on the right, standing in for a slice of an audio plugin UI.
// Click and drag on either control to change its value; dragging
// right or down increases it.  The parameter knob shows its value in
// a small label while it's being dragged.

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/strudelaudio/knobkit"
)

const (
	widgetSize = 240
	boxWidth   = 120
	boxHeight  = 48
	margin     = 40
)

var (
	knobRect  = image.Rect(margin, margin, margin+widgetSize, margin+widgetSize)
	gaugeRect = image.Rect(2*margin+widgetSize, margin, 2*margin+2*widgetSize, margin+widgetSize)
)

type game struct {
	knob  *knobkit.ParamKnob
	gauge *knobkit.GaugeKnob

	knobDrag  *knobkit.DragTracker
	gaugeDrag *knobkit.DragTracker
	active    *knobkit.DragTracker

	knobImg  *ebiten.Image
	gaugeImg *ebiten.Image
	boxImg   *ebiten.Image
	dirty    bool
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.active == nil {
			switch {
			case image.Pt(x, y).In(knobRect):
				g.active = g.knobDrag
			case image.Pt(x, y).In(gaugeRect):
				g.active = g.gaugeDrag
			}
			if g.active != nil {
				g.active.Down(x, y)
				g.dirty = true
			}
		} else {
			g.active.Move(x, y)
		}
	} else if g.active != nil {
		g.active.Up(x, y)
		g.active = nil
		g.dirty = true
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.knobImg == nil {
		g.rerender()
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(knobRect.Min.X), float64(knobRect.Min.Y))
	screen.DrawImage(g.knobImg, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(gaugeRect.Min.X), float64(gaugeRect.Min.Y))
	screen.DrawImage(g.gaugeImg, op)

	if g.boxImg != nil {
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(knobRect.Min.X+(widgetSize-boxWidth)/2), float64(knobRect.Max.Y+8))
		screen.DrawImage(g.boxImg, op)
	}
}

func (g *game) rerender() {
	g.knobImg = ebiten.NewImageFromImage(g.knob.Render(widgetSize, widgetSize))
	g.gaugeImg = ebiten.NewImageFromImage(g.gauge.Render(widgetSize, widgetSize))

	g.boxImg = nil
	box, err := g.knob.RenderValueBox(boxWidth, boxHeight)
	if err != nil {
		log.Printf("value box render failed: %v", err)
		return
	}
	if box != nil {
		g.boxImg = ebiten.NewImageFromImage(box)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 3*margin + 2*widgetSize, 2*margin + widgetSize + boxHeight + 8
}

func main() {
	fonts, err := knobkit.DefaultFonts()
	if err != nil {
		log.Fatal(err)
	}

	gain := knobkit.NewWatchedFloat(0.25)
	gain.AddWatcher(func(v float64) { fmt.Printf("gain -> %v\n", v) })

	level := knobkit.NewWatchedFloat(0.6)
	level.AddWatcher(func(v float64) { fmt.Printf("level -> %v\n", v) })

	g := &game{
		knob: knobkit.NewParamKnob(0, 1, 100, gain, fonts),
		gauge: knobkit.NewGaugeKnob(0, 1, level,
			color.RGBA{0, 160, 64, 255},
			color.RGBA{224, 192, 0, 255},
			color.RGBA{224, 32, 32, 255}),
	}
	g.knobDrag = knobkit.NewDragTracker(func(event knobkit.DragEvent, x, y int) {
		g.knob.HandleDrag(event, x, y)
		g.dirty = true
	})
	g.gaugeDrag = knobkit.NewDragTracker(func(event knobkit.DragEvent, x, y int) {
		g.gauge.HandleDrag(event, x, y)
		g.dirty = true
	})

	ebiten.SetWindowTitle("knobkit demo")
	ebiten.SetWindowSize(3*margin+2*widgetSize, 2*margin+widgetSize+boxHeight+8)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
