package geom

// Point is a pair of integer chip-unit coordinates. Its zero value is the
// origin. Equality and a total order are defined lexicographically on
// (X, Y), mirroring the default comparison the teacher relies on for
// ordered containers (core.Graph.Vertices() sorts by ID the same way).
type Point struct {
	X, Y int64
}

// Equal reports whether p and q denote the same lattice point.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Less implements the total order used to break ties deterministically:
// lexicographic on (X, Y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// isCore marks Point as a valid TRR core (see Corer).
func (p Point) isCore() {}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// L1 returns the Manhattan distance |Δx|+|Δy| between two points.
func L1(a, b Point) int64 {
	return abs64(a.X-b.X) + abs64(a.Y-b.Y)
}
