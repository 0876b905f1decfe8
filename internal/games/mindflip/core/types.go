// Package core provides the grid model, walkability graph, pathfinder and
// flip engine for the MindFlip puzzle game.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a game object.
type Kind uint8

const (
	KindHero Kind = iota
	KindBlock
	KindDestinationMarker
	KindCollectable
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "Hero"
	case KindBlock:
		return "Block"
	case KindDestinationMarker:
		return "DestinationMarker"
	case KindCollectable:
		return "Collectable"
	default:
		return "Unknown"
	}
}

// Traits returns the default walkable and flippable flags for objects of this kind.
func (k Kind) Traits() (walkable, flippable bool) {
	switch k {
	case KindBlock:
		return false, true
	case KindCollectable:
		return true, true
	default:
		// Hero and destination marker never block and never flip.
		return true, false
	}
}

// Flip identifies one of the four board-wide geometric transforms.
type Flip uint8

const (
	FlipUp      Flip = iota // vertical mirror
	FlipRight               // horizontal mirror
	FlipUpRight             // anti-diagonal
	FlipUpLeft              // main diagonal
)

// Flips lists every transform in declaration order.
var Flips = []Flip{FlipUp, FlipRight, FlipUpRight, FlipUpLeft}

// String returns the string representation of a flip.
func (f Flip) String() string {
	switch f {
	case FlipUp:
		return "up"
	case FlipRight:
		return "right"
	case FlipUpRight:
		return "upright"
	case FlipUpLeft:
		return "upleft"
	default:
		return "unknown"
	}
}

// ParseFlip converts a direction name into a Flip.
// Accepts the String() forms plus hyphenated variants ("up-right").
func ParseFlip(s string) (Flip, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "up":
		return FlipUp, nil
	case "right":
		return FlipRight, nil
	case "upright":
		return FlipUpRight, nil
	case "upleft":
		return FlipUpLeft, nil
	default:
		return 0, fmt.Errorf("unknown flip direction %q", s)
	}
}

// Phase is the level's position in its move/flip state machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePathComputing
	PhaseTransforming
	PhaseGraphRebuilding
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePathComputing:
		return "PathComputing"
	case PhaseTransforming:
		return "Transforming"
	case PhaseGraphRebuilding:
		return "GraphRebuilding"
	default:
		return "Unknown"
	}
}
