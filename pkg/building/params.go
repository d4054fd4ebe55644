package building

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Angular resolution bounds, inclusive.
const (
	MinSides = 3
	MaxSides = 36
)

// DefaultName is used when a building has no name.
const DefaultName = "building"

// ErrInvalidParameter is matched by every ParamError.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes a rejected input value.
type ParamError struct {
	Field   string // e.g. "sides", "levels[2].height"
	Value   any
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s is %v, %s", ErrInvalidParameter, e.Field, e.Value, e.Message)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Level is one frustum segment. All fields are in scene units and must be
// positive; BaseRadius may equal TopRadius (a cylinder).
type Level struct {
	Height     float64 `toml:"height" yaml:"height"`
	BaseRadius float64 `toml:"base" yaml:"base"`
	TopRadius  float64 `toml:"top" yaml:"top"`
}

// NewLevel returns a validated Level.
func NewLevel(height, baseRadius, topRadius float64) (Level, error) {
	l := Level{Height: height, BaseRadius: baseRadius, TopRadius: topRadius}
	if err := l.validate("level"); err != nil {
		return Level{}, err
	}
	return l, nil
}

func (l Level) validate(prefix string) error {
	if err := positive(prefix+".height", l.Height); err != nil {
		return err
	}
	if err := positive(prefix+".base", l.BaseRadius); err != nil {
		return err
	}
	return positive(prefix+".top", l.TopRadius)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Field: field, Value: v, Message: "must be finite"}
	}
	if v <= 0 {
		return &ParamError{Field: field, Value: v, Message: "must be positive"}
	}
	return nil
}

// Params is a complete generation request.
type Params struct {
	Name   string  `toml:"name" yaml:"name"`
	Sides  int     `toml:"sides" yaml:"sides"`
	Levels []Level `toml:"levels" yaml:"levels"`
}

// Validate checks the request before any geometry is built. The first
// offending field is reported.
func (p Params) Validate() error {
	if p.Sides < MinSides || p.Sides > MaxSides {
		return &ParamError{
			Field:   "sides",
			Value:   p.Sides,
			Message: fmt.Sprintf("must be between %d and %d", MinSides, MaxSides),
		}
	}
	if len(p.Levels) == 0 {
		return &ParamError{Field: "levels", Value: 0, Message: "must contain at least one level"}
	}
	for i, l := range p.Levels {
		if err := l.validate(fmt.Sprintf("levels[%d]", i)); err != nil {
			return err
		}
	}
	if strings.ContainsFunc(p.Name, unicode.IsControl) {
		return &ParamError{Field: "name", Value: strconv.Quote(p.Name), Message: "must not contain control characters"}
	}
	return nil
}

// DisplayName returns Name, or DefaultName when it is empty.
func (p Params) DisplayName() string {
	if p.Name == "" {
		return DefaultName
	}
	return p.Name
}

// Height returns the total height of the stack.
func (p Params) Height() float64 {
	var h float64
	for _, l := range p.Levels {
		h += l.Height
	}
	return h
}
