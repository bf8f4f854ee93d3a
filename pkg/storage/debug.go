package storage

import "github.com/gravitas-games/hextile/pkg/hex"

// Read-only views for inspecting a store by eye. Nothing depends on them.

// Memory returns the raw backing buffer.
func (s *Shaped[T, V]) Memory() []V { return s.access() }

// TableView copies the buffer into rows of Height values.
func (s *Shaped[T, V]) TableView() [][]V {
	return table(s.access(), s.Width(), s.height)
}

// RhombusView labels every slot with the axial cell (q=col, r=row) that
// rhombus addressing maps to it.
func (s *Shaped[T, V]) RhombusView() map[hex.Axial[T]]V {
	out := make(map[hex.Axial[T]]V)
	w := s.Width()
	for row := 0; row < w; row++ {
		for col := 0; col < s.height; col++ {
			a := hex.Axial[T]{Q: T(col), R: T(row)}
			if p, ok := s.Ref(a); ok {
				out[a] = *p
			}
		}
	}
	return out
}

// RectangleView reads double-height cells with rows in [-width/2, width/2)
// and columns in [0, height), keeping those that land inside the buffer.
func (s *Shaped[T, V]) RectangleView() map[hex.DoubleHeight[T]]V {
	out := make(map[hex.DoubleHeight[T]]V)
	half := s.Width() / 2
	for x := -half; x < half; x++ {
		for y := 0; y < s.height; y++ {
			d := hex.DoubleHeight[T]{Row: T(x), Col: T(y)}
			if p, ok := s.Ref(d); ok {
				out[d] = *p
			}
		}
	}
	return out
}

// TableView copies the array into rows of Height values.
func (a *Array[K, V]) TableView() [][]V {
	return table(a.values, a.width, a.height)
}

func table[V any](buf []V, width, height int) [][]V {
	out := make([][]V, width)
	for x := range out {
		out[x] = make([]V, height)
		copy(out[x], buf[x*height:(x+1)*height])
	}
	return out
}
