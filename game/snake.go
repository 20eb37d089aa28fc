package game

// Snake is the player entity
// Segments are stored head first
type Snake struct {
	segments []Coord
	heading  Direction
	pending  int
}

// NewSnake builds a snake from explicit segments, head first
func NewSnake(segments []Coord, heading Direction) *Snake {
	body := make([]Coord, len(segments))
	copy(body, segments)
	return &Snake{segments: body, heading: heading}
}

// NewStraightSnake lays out length segments on the middle row, heading right
// Placement matches the classic start: the body is centered around the middle column
func NewStraightSnake(g Grid, length int) *Snake {
	y := g.Height / 2
	headX := (g.Width-1)/2 + length/2
	if headX >= g.Width {
		headX = g.Width - 1
	}

	segments := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		segments = append(segments, Coord{X: headX - i, Y: y})
	}
	return &Snake{segments: segments, heading: DirRight}
}

// Head returns the first segment
func (s *Snake) Head() Coord {
	return s.segments[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Coord {
	return s.segments[len(s.segments)-1]
}

// Len returns the current segment count
func (s *Snake) Len() int {
	return len(s.segments)
}

// Heading returns the current direction of travel
func (s *Snake) Heading() Direction {
	return s.heading
}

// Pending returns the number of growth steps not yet applied
func (s *Snake) Pending() int {
	return s.pending
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Coord {
	out := make([]Coord, len(s.segments))
	copy(out, s.segments)
	return out
}

// SetHeading adopts dir unless it is DirNone or the exact reversal of the current heading
// Returns true if the heading was adopted
func (s *Snake) SetHeading(dir Direction) bool {
	if dir == DirNone || dir == s.heading.Opposite() {
		return false
	}
	s.heading = dir
	return true
}

// Grow schedules n additional segments
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pending += n
	}
}

// Next computes the head position for the coming advance without mutating
func (s *Snake) Next(g Grid, policy WallPolicy) (Coord, error) {
	return g.Translate(s.Head(), s.heading, policy)
}

// Contains reports whether c is occupied after accounting for the tail leaving this tick
// The tail only leaves when no growth is pending
func (s *Snake) Contains(c Coord) bool {
	n := len(s.segments)
	if s.pending == 0 {
		n--
	}
	for i := 0; i < n; i++ {
		if s.segments[i] == c {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, including the tail, is at c
func (s *Snake) Occupies(c Coord) bool {
	for _, seg := range s.segments {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance moves the head one cell along the heading
// With pending growth the tail stays and the counter decrements, otherwise the tail is vacated
// On ErrOutOfBounds nothing is mutated
func (s *Snake) Advance(g Grid, policy WallPolicy) (head, vacated Coord, didVacate bool, err error) {
	head, err = s.Next(g, policy)
	if err != nil {
		return s.Head(), Coord{}, false, err
	}

	if s.pending > 0 {
		s.pending--
		s.segments = append(s.segments, Coord{})
	} else {
		vacated = s.Tail()
		didVacate = true
	}

	// Shift body one slot toward the tail, dropping or keeping the old tail slot
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = head

	return head, vacated, didVacate, nil
}

// Clone returns an independent copy
func (s *Snake) Clone() *Snake {
	c := NewSnake(s.segments, s.heading)
	c.pending = s.pending
	return c
}
