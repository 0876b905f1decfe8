package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates an ASCII dump of the level.
// This is used for debugging, testing (golden outputs) and CLI inspection.
//
// Format (top board row first):
//   - '#' void, '.' floor
//   - 'H' hero, 'B' block, 'C' collectable, 'D' destination marker
//
// When several objects share a cell the first letter in the order above wins.
func RenderASCII(lv *Level) string {
	var sb strings.Builder
	d := lv.Dims()

	sb.WriteString(fmt.Sprintf("Board: %dx%d | Hero: %s | Marker: %s\n",
		d.W, d.H, lv.HeroPosition(), lv.DestinationMarkerPosition()))

	for y := d.H - 1; y >= 0; y-- {
		for x := 0; x < d.W; x++ {
			sb.WriteByte(cellChar(lv.grid.cell(C(x, y))))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cellChar(c *Cell) byte {
	var hero, block, collectable, marker bool
	for _, o := range c.objects {
		switch o.kind {
		case KindHero:
			hero = true
		case KindBlock:
			block = true
		case KindCollectable:
			collectable = true
		case KindDestinationMarker:
			marker = true
		}
	}

	switch {
	case hero:
		return 'H'
	case block:
		return 'B'
	case collectable:
		return 'C'
	case marker:
		return 'D'
	case c.tile:
		return '.'
	default:
		return '#'
	}
}
