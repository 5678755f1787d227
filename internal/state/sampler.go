package state

// MinDistSq is the decimation threshold in squared pixel units. A
// sampled point closer than this to the last accepted point is dropped.
// This trades stroke fidelity for point-count reduction; it is not a
// smoothing pass.
const MinDistSq = 10

// Sampler turns a raw pointer-move stream into a decimated point
// sequence for one in-progress gesture. The surface processes at most
// one pointer at a time, so Sampler has no internal locking; the UI
// event goroutine owns it.
type Sampler struct {
	active bool
	points []Point
	last   Point
}

// Begin starts a new gesture seeded with p. The seed point is always
// kept regardless of the decimation threshold.
func (s *Sampler) Begin(p Point) {
	s.active = true
	s.points = []Point{p}
	s.last = p
}

// Active reports whether a gesture is in progress.
func (s *Sampler) Active() bool { return s.active }

// Extend feeds one raw pointer position into the live gesture. When no
// gesture is active it does nothing. Points within MinDistSq of the
// last accepted point are dropped.
func (s *Sampler) Extend(p Point) {
	if !s.active {
		return
	}
	if p.DistSq(s.last) < MinDistSq {
		return
	}
	s.points = append(s.points, p)
	s.last = p
}

// Live returns the in-progress point sequence for preview rendering.
// The slice is owned by the sampler until End transfers it out; callers
// must not retain or mutate it.
func (s *Sampler) Live() []Point { return s.points }

// End finishes the gesture and hands the accepted sequence to the
// caller. A gesture that accepted no points yields ok=false. Safe to
// call when no gesture is active. Pointer-leave is handled by calling
// End exactly as pointer-up would.
func (s *Sampler) End() (points []Point, ok bool) {
	points = s.points
	s.active = false
	s.points = nil
	if len(points) == 0 {
		return nil, false
	}
	return points, true
}
