package effect

// scriptedSource replays fixed values, repeating the last one when exhausted.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[min(s.fi, len(s.floats)-1)]
	s.fi++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[min(s.ii, len(s.ints)-1)]
	s.ii++
	return v % n
}

func constantFloat(v float64) *scriptedSource {
	return &scriptedSource{floats: []float64{v}}
}
