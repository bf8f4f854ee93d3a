package hex

import "fmt"

// DoubleHeight stores every column once and doubles the row step, which
// keeps flat-top rectangular maps on integer coordinates.
type DoubleHeight[T Scalar] struct {
	Row T `json:"row"`
	Col T `json:"col"`
}

// ToAxial converts back to axial: q = col, r = (row - col) / 2.
// Integral scalars use floor division (see Half).
func (d DoubleHeight[T]) ToAxial() Axial[T] {
	return Axial[T]{Q: d.Col, R: Half(d.Row - d.Col)}
}

// ToCube converts through axial.
func (d DoubleHeight[T]) ToCube() Cube[T] { return d.ToAxial().ToCube() }

// Axes returns (Col, Row) as a 2-D storage key.
func (d DoubleHeight[T]) Axes() (int, int) { return int(d.Col), int(d.Row) }

func (d DoubleHeight[T]) String() string {
	return fmt.Sprintf("DoubleHeight(row=%v, col=%v)", d.Row, d.Col)
}

// DoubleWidth doubles the column step instead, for pointy-top maps.
type DoubleWidth[T Scalar] struct {
	Col T `json:"col"`
	Row T `json:"row"`
}

// ToAxial converts back to axial: q = (col - row) / 2, r = row.
func (d DoubleWidth[T]) ToAxial() Axial[T] {
	return Axial[T]{Q: Half(d.Col - d.Row), R: d.Row}
}

// ToCube converts through axial.
func (d DoubleWidth[T]) ToCube() Cube[T] { return d.ToAxial().ToCube() }

// Axes returns (Col, Row) as a 2-D storage key.
func (d DoubleWidth[T]) Axes() (int, int) { return int(d.Col), int(d.Row) }

func (d DoubleWidth[T]) String() string {
	return fmt.Sprintf("DoubleWidth(col=%v, row=%v)", d.Col, d.Row)
}
