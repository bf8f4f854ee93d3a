package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gravitas-games/hextile/pkg/hex"
)

// Coordinate systems accepted on the wire
const (
	SystemCube         = "cube"
	SystemAxial        = "axial"
	SystemDoubleHeight = "double_height"
	SystemDoubleWidth  = "double_width"
	SystemOffset       = "offset"
)

// ErrOddDoubled is returned for doubled coordinates whose row and column
// differ by an odd amount. No cell has such a pair.
var ErrOddDoubled = errors.New("doubled coordinate row and col must have the same parity")

// Coord is a cell in any supported coordinate system. Only the fields the
// system uses are read: q/r/s for cube, q/r for axial, row/col for the
// doubled and offset systems. Offset also needs a layout.
type Coord struct {
	System string `json:"system"`
	Layout string `json:"layout,omitempty"`
	Q      int    `json:"q,omitempty"`
	R      int    `json:"r,omitempty"`
	S      int    `json:"s,omitempty"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
}

// Cube converts the wire coordinate to cube form.
func (c Coord) Cube() (hex.Cube[int], error) {
	switch strings.ToLower(c.System) {
	case SystemCube:
		return hex.NewCube(c.Q, c.R, c.S)
	case SystemAxial, "":
		return hex.Axial[int]{Q: c.Q, R: c.R}.ToCube(), nil
	case SystemDoubleHeight:
		if (c.Row-c.Col)&1 != 0 {
			return hex.Cube[int]{}, fmt.Errorf("%w: row %d, col %d", ErrOddDoubled, c.Row, c.Col)
		}
		return hex.DoubleHeight[int]{Row: c.Row, Col: c.Col}.ToCube(), nil
	case SystemDoubleWidth:
		if (c.Col-c.Row)&1 != 0 {
			return hex.Cube[int]{}, fmt.Errorf("%w: row %d, col %d", ErrOddDoubled, c.Row, c.Col)
		}
		return hex.DoubleWidth[int]{Col: c.Col, Row: c.Row}.ToCube(), nil
	case SystemOffset:
		l, err := hex.ParseLayout(c.Layout)
		if err != nil {
			return hex.Cube[int]{}, err
		}
		return hex.NewOffset(l, c.Row, c.Col).ToCube(), nil
	}
	return hex.Cube[int]{}, fmt.Errorf("unknown coordinate system %q", c.System)
}

// Axial converts the wire coordinate to axial form.
func (c Coord) Axial() (hex.Axial[int], error) {
	cube, err := c.Cube()
	if err != nil {
		return hex.Axial[int]{}, err
	}
	return cube.ToAxial(), nil
}

// AxialCoord builds the wire form of an axial cell.
func AxialCoord(a hex.Axial[int]) Coord {
	return Coord{System: SystemAxial, Q: a.Q, R: a.R}
}

// Represent expresses c in every coordinate system.
func Represent(c hex.Cube[int]) Representations {
	a := c.ToAxial()
	r := Representations{
		Cube:         c.Vector(),
		Axial:        a,
		DoubleHeight: a.ToDoubleHeight(),
		DoubleWidth:  a.ToDoubleWidth(),
		Offsets:      make(map[hex.Layout]hex.Offset[int], len(hex.Layouts)),
	}
	for _, l := range hex.Layouts {
		r.Offsets[l] = c.ToOffset(l)
	}
	return r
}
