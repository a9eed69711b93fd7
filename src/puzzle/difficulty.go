package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Insane
)

var Difficulties = []Difficulty{Easy, Medium, Hard, Insane}

// Grid returns rows and columns of the preset.
func (d Difficulty) Grid() (rows, cols int) {
	switch d {
	case Medium:
		return 5, 5
	case Hard:
		return 10, 10
	case Insane:
		return 40, 25
	default:
		return 3, 3
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Insane:
		return "insane"
	default:
	}
	return ""
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
