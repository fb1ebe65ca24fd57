package layout

import (
	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Handedness selects which hand the board is laid out for.
// The zero value is Right.
type Handedness uint8

const (
	Right Handedness = iota
	Left
)

// String returns "right" or "left".
func (h Handedness) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// ParseHandedness parses "right" or "left". A leading capital is accepted
// so that values written in metadata by older tools still parse.
func ParseHandedness(s string) (Handedness, error) {
	switch s {
	case "right", "Right":
		return Right, nil
	case "left", "Left":
		return Left, nil
	}
	return Right, ferrors.MalformedHandedness(s)
}

// MarshalText implements encoding.TextMarshaler.
func (h Handedness) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Handedness) UnmarshalText(text []byte) error {
	v, err := ParseHandedness(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
