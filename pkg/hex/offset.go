package hex

import "fmt"

// Layout selects one of the four offset parity variants.
type Layout uint8

const (
	// EvenFlat shoves even columns down (flat-top hexes).
	EvenFlat Layout = iota
	// OddFlat shoves odd columns down (flat-top hexes).
	OddFlat
	// EvenPointy shoves even rows right (pointy-top hexes).
	EvenPointy
	// OddPointy shoves odd rows right (pointy-top hexes).
	OddPointy
)

// Row/column names for the same four layouts.
const (
	EvenColumn = EvenFlat
	OddColumn  = OddFlat
	EvenRow    = EvenPointy
	OddRow     = OddPointy
)

// Layouts lists every offset layout.
var Layouts = [...]Layout{EvenFlat, OddFlat, EvenPointy, OddPointy}

func (l Layout) String() string {
	switch l {
	case EvenFlat:
		return "even-flat"
	case OddFlat:
		return "odd-flat"
	case EvenPointy:
		return "even-pointy"
	case OddPointy:
		return "odd-pointy"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// ParseLayout accepts both the flat/pointy and the column/row names.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "even-flat", "even-column", "evenflat", "evencolumn":
		return EvenFlat, nil
	case "odd-flat", "odd-column", "oddflat", "oddcolumn":
		return OddFlat, nil
	case "even-pointy", "even-row", "evenpointy", "evenrow":
		return EvenPointy, nil
	case "odd-pointy", "odd-row", "oddpointy", "oddrow":
		return OddPointy, nil
	}
	return 0, fmt.Errorf("hex: unknown offset layout %q", s)
}

// MarshalText encodes the layout by name.
func (l Layout) MarshalText() ([]byte, error) {
	if l > OddPointy {
		return nil, fmt.Errorf("hex: unknown offset layout %d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText accepts any name ParseLayout does.
func (l *Layout) UnmarshalText(b []byte) error {
	v, err := ParseLayout(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Offset is a row/column position on a rectangular screen grid. Layout
// decides which rows or columns are shifted by half a cell.
type Offset[T Scalar] struct {
	Layout Layout `json:"layout"`
	Row    T      `json:"row"`
	Col    T      `json:"col"`
}

// NewOffset builds an offset coordinate.
func NewOffset[T Scalar](l Layout, row, col T) Offset[T] {
	return Offset[T]{Layout: l, Row: row, Col: col}
}

// Axes returns (Row, Col) as a 2-D storage key.
func (o Offset[T]) Axes() (int, int) { return int(o.Row), int(o.Col) }

func (o Offset[T]) String() string {
	return fmt.Sprintf("Offset[%s](row=%v, col=%v)", o.Layout, o.Row, o.Col)
}

// OffsetFromCube converts a cube coordinate into the given layout.
func OffsetFromCube[T Scalar](l Layout, c Cube[T]) Offset[T] {
	q, r := c.q, c.r
	switch l {
	case EvenFlat:
		return Offset[T]{Layout: l, Col: q, Row: r + floorHalf(q+Parity(q))}
	case OddFlat:
		return Offset[T]{Layout: l, Col: q, Row: r + floorHalf(q-Parity(q))}
	case EvenPointy:
		return Offset[T]{Layout: l, Col: q + floorHalf(r+Parity(r)), Row: r}
	case OddPointy:
		return Offset[T]{Layout: l, Col: q + floorHalf(r-Parity(r)), Row: r}
	default:
		panic(fmt.Sprintf("hex: unknown offset layout %d", l))
	}
}

// ToCube converts the offset coordinate back to cube form.
func (o Offset[T]) ToCube() Cube[T] {
	var q, r T
	switch o.Layout {
	case EvenFlat:
		q = o.Col
		r = o.Row - floorHalf(o.Col+Parity(o.Col))
	case OddFlat:
		q = o.Col
		r = o.Row - floorHalf(o.Col-Parity(o.Col))
	case EvenPointy:
		q = o.Col - floorHalf(o.Row+Parity(o.Row))
		r = o.Row
	case OddPointy:
		q = o.Col - floorHalf(o.Row-Parity(o.Row))
		r = o.Row
	default:
		panic(fmt.Sprintf("hex: unknown offset layout %d", o.Layout))
	}
	return Cube[T]{q: q, r: r, s: -q - r}
}

// ToAxial converts through cube.
func (o Offset[T]) ToAxial() Axial[T] { return o.ToCube().ToAxial() }

// As re-expresses o in another layout. The conversion always goes through
// cube form, never directly between layouts.
func (o Offset[T]) As(l Layout) Offset[T] {
	if l == o.Layout {
		return o
	}
	return OffsetFromCube(l, o.ToCube())
}

// ToOffset converts a cube coordinate into the given layout.
func (c Cube[T]) ToOffset(l Layout) Offset[T] { return OffsetFromCube(l, c) }
