package store

// idSource mints ICP ids. It only moves forward, so an id handed out once is
// never handed out again, even after the ICP is deleted.
type idSource struct {
	last int64
}

func newIDSource(floor int64) *idSource {
	if floor < 0 {
		floor = 0
	}
	return &idSource{last: floor}
}

func (s *idSource) next() int64 {
	s.last++
	return s.last
}
