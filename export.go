package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	exportNodeFill     = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	exportSelectedFill = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	exportEdgeColor    = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
)

// ExportPNG renders the whole map to a PNG image: gray edges, filled node
// boxes (selected nodes in green), white borders and centered labels. The
// image bounds cover every node box plus a margin, independent of the
// current pan offset.
func ExportPNG(e *Engine, filename string) error {
	nodes := e.Nodes()
	if len(nodes) == 0 {
		return fmt.Errorf("nothing to export")
	}

	w, h := NodeSize(e.ViewportWidth())

	minX, minY := nodes[0].X-w/2, nodes[0].Y-h/2
	maxX, maxY := nodes[0].X+w/2, nodes[0].Y+h/2
	for _, n := range nodes[1:] {
		if n.X-w/2 < minX {
			minX = n.X - w/2
		}
		if n.Y-h/2 < minY {
			minY = n.Y - h/2
		}
		if n.X+w/2 > maxX {
			maxX = n.X + w/2
		}
		if n.Y+h/2 > maxY {
			maxY = n.Y + h/2
		}
	}

	margin := 40.0
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin

	dc := gg.NewContext(int(maxX-minX), int(maxY-minY))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	byID := make(map[int]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	// Edges first so boxes sit on top of them.
	dc.SetColor(exportEdgeColor)
	dc.SetLineWidth(2)
	for _, n := range nodes {
		for _, childID := range n.Children {
			child, ok := byID[childID]
			if !ok {
				continue
			}
			dc.DrawLine(n.X-minX, n.Y-minY, child.X-minX, child.Y-minY)
			dc.Stroke()
		}
	}

	for _, n := range nodes {
		x := n.X - minX - w/2
		y := n.Y - minY - h/2

		if e.IsSelected(n.ID) {
			dc.SetColor(exportSelectedFill)
		} else {
			dc.SetColor(exportNodeFill)
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		dc.SetColor(color.White)
		dc.SetLineWidth(2)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		dc.DrawStringAnchored(n.Text, n.X-minX, n.Y-minY, 0.5, 0.5)
	}

	return dc.SavePNG(filename)
}
