package board

import (
	"fmt"
	"strings"
)

// Size is one of the three fixed board presets.
type Size int8

const (
	SizeSmall  Size = iota // 8x8, 10 mines
	SizeMedium             // 16x16, 40 mines
	SizeLarge              // 24x24, 99 mines
)

// Params returns the width, height and mine count of the preset.
func (s Size) Params() (width, height, mines int) {
	switch s {
	case SizeMedium:
		return 16, 16, 40
	case SizeLarge:
		return 24, 24, 99
	default:
		return 8, 8, 10
	}
}

// Label is the human-readable preset name.
func (s Size) Label() string {
	switch s {
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	default:
		return "Small"
	}
}

func (s Size) String() string {
	return s.Label()
}

// SizeFromParams maps a width/height/mine-count triple back to its
// preset. Unrecognized triples fall back to SizeSmall.
func SizeFromParams(width, height, mines int) Size {
	switch [3]int{width, height, mines} {
	case [3]int{16, 16, 40}:
		return SizeMedium
	case [3]int{24, 24, 99}:
		return SizeLarge
	default:
		return SizeSmall
	}
}

// ParseSize resolves a preset by its label, case-insensitively.
func ParseSize(label string) (Size, error) {
	switch strings.ToLower(label) {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeSmall, fmt.Errorf("unknown board size %q", label)
	}
}
