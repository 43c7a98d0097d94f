package physics

// Trail is a fixed-capacity FIFO of points. Once full, each Push evicts the
// oldest point. A zero-capacity trail records nothing.
type Trail struct {
	buf   []Vec2
	start int // index of the oldest point
	n     int
}

// NewTrail returns an empty trail holding at most capacity points.
// Negative capacities are treated as zero.
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{buf: make([]Vec2, capacity)}
}

// Push appends p, evicting the oldest point when the trail is full.
func (t *Trail) Push(p Vec2) {
	c := len(t.buf)
	if c == 0 {
		return
	}
	if t.n < c {
		t.buf[(t.start+t.n)%c] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % c
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Cap returns the maximum number of points.
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th point, 0 being the oldest. It panics if i is out of range.
func (t *Trail) At(i int) Vec2 {
	if i < 0 || i >= t.n {
		panic("physics: trail index out of range")
	}
	return t.buf[(t.start+i)%len(t.buf)]
}

// Points returns a copy of the stored points, oldest first.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, t.n)
	for i := range out {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

// Reset drops all points, keeping the capacity.
func (t *Trail) Reset() {
	t.start = 0
	t.n = 0
}
