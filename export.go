package main

import (
	"fmt"
	"image/color"
	"math"

	"cardboard/internal/board"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const exportPadding = 20.0

// ExportToPNG draws the view at its current zoom. Connectors use the same
// curve parameters as the terminal renderer.
func ExportToPNG(v board.View, filename string) error {
	if len(v.Cards) == 0 {
		return fmt.Errorf("nothing to export")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, card := range v.Cards {
		grow(card.Bounds.Left(), card.Bounds.Top())
		grow(card.Bounds.Right(), card.Bounds.Bottom())
	}
	for _, p := range v.Connectors {
		for _, pt := range []board.Point{p.Start, p.Control1, p.Control2, p.End} {
			grow(pt.X, pt.Y)
		}
	}
	minX -= exportPadding
	minY -= exportPadding

	imageWidth := int(math.Ceil(maxX - minX + exportPadding))
	imageHeight := int(math.Ceil(maxY - minY + exportPadding))

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12 * v.Scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, p := range v.Connectors {
		drawConnectorPNG(dc, p, minX, minY)
	}
	for _, card := range v.Cards {
		drawCardPNG(dc, card, minX, minY, v.Scale)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png %s: %w", filename, err)
	}
	return nil
}

func drawConnectorPNG(dc *gg.Context, p board.Path, minX, minY float64) {
	dc.SetColor(color.Gray{Y: 96})
	dc.SetLineWidth(p.StrokeWidth)
	dc.MoveTo(p.Start.X-minX, p.Start.Y-minY)
	dc.CubicTo(
		p.Control1.X-minX, p.Control1.Y-minY,
		p.Control2.X-minX, p.Control2.Y-minY,
		p.End.X-minX, p.End.Y-minY,
	)
	dc.Stroke()
}

func drawCardPNG(dc *gg.Context, card board.CardView, minX, minY, scale float64) {
	x := card.Bounds.X - minX
	y := card.Bounds.Y - minY
	pad := 8 * scale

	dc.SetColor(color.White)
	dc.DrawRectangle(x, y, card.Bounds.Width, card.Bounds.Height)
	dc.Fill()

	dc.SetColor(color.Black)
	dc.SetLineWidth(math.Max(1, scale))
	dc.DrawRectangle(x, y, card.Bounds.Width, card.Bounds.Height)
	dc.Stroke()

	lineHeight := dc.FontHeight() * 1.4
	textY := y + pad
	if card.Title != "" {
		dc.DrawStringAnchored(card.Title, x+pad, textY, 0, 1)
		textY += lineHeight
	}
	if card.Text != "" {
		dc.DrawStringWrapped(card.Text, x+pad, textY, 0, 0, card.Bounds.Width-2*pad, 1.4, gg.AlignLeft)
	}
}
