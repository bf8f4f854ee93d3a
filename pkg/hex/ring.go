package hex

// Rings returns the cells at exact distance k from c, starting k steps
// out in direction 4 and walking the six sides in direction order. It
// returns nil for k <= 0.
func (c Cube[T]) Rings(k int) []Cube[T] {
	if k <= 0 {
		return nil
	}
	res := make([]Cube[T], 0, 6*k)
	cur := c.Add(DirectionVector[T](4).Scale(T(k)))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Neighbor(Direction(side))
		}
	}
	return res
}

// CubicDistance returns every cell at distance <= k from c, enumerated in
// lexicographic (q, r, s) order over the bounding cube. k=0 yields c alone.
func (c Cube[T]) CubicDistance(k int) []Cube[T] {
	if k < 0 {
		return nil
	}
	res := make([]Cube[T], 0, 3*k*k+3*k+1)
	n := T(k)
	for x := c.q - n; x <= c.q+n; x++ {
		for y := c.r - n; y <= c.r+n; y++ {
			for z := c.s - n; z <= c.s+n; z++ {
				if x+y+z != 0 {
					continue
				}
				res = append(res, Cube[T]{q: x, r: y, s: z})
			}
		}
	}
	return res
}

// Edge returns the k cells of the radius-k ring facing direction side:
// every one of them steps off the ring, to distance k+1, when moved in
// side. The run starts at corner c+k·dir[side] and heads toward corner
// c+k·dir[side+1], excluding it, so the six edges partition the ring.
// That run is the ring walk's segment (side+2)%6.
// For k <= 0 it returns [c].
func (c Cube[T]) Edge(k int, side Direction) []Cube[T] {
	if k <= 0 {
		return []Cube[T]{c}
	}
	if !side.Valid() {
		return nil
	}
	ring := c.Rings(k)
	start := int((side+2)%6) * k
	seg := make([]Cube[T], k)
	copy(seg, ring[start:start+k])
	return seg
}

// Ring is Rings for axial coordinates.
func Ring[T Scalar](c Axial[T], k int) []Axial[T] {
	return toAxials(c.ToCube().Rings(k))
}

// Disk is CubicDistance for axial coordinates.
func Disk[T Scalar](c Axial[T], k int) []Axial[T] {
	return toAxials(c.ToCube().CubicDistance(k))
}

func toAxials[T Scalar](cs []Cube[T]) []Axial[T] {
	if cs == nil {
		return nil
	}
	out := make([]Axial[T], len(cs))
	for i, c := range cs {
		out[i] = c.ToAxial()
	}
	return out
}
