package world

// Line returns every tile on the Bresenham line from a to b, both ends included.
// Consecutive points differ by at most one step on each axis.
func Line(a, b Point) []Point {
	dc := absInt(b.Col - a.Col)
	dr := -absInt(b.Row - a.Row)
	sc := 1
	if a.Col > b.Col {
		sc = -1
	}
	sr := 1
	if a.Row > b.Row {
		sr = -1
	}
	err := dc + dr

	points := make([]Point, 0, max(dc, -dr)+1)
	c, r := a.Col, a.Row
	for {
		points = append(points, Point{Col: c, Row: r})
		if c == b.Col && r == b.Row {
			break
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c += sc
		}
		if e2 <= dc {
			err += dc
			r += sr
		}
	}
	return points
}

// HasLineOfSight returns true if every tile on the line from a to b is
// walkable. Diagonal steps also require both orthogonal neighbours to be
// walkable so a straight walk never clips a blocked corner.
func HasLineOfSight(g *Grid, a, b Point) bool {
	line := Line(a, b)
	for i, p := range line {
		if !g.IsTileWalkable(p) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := line[i-1]
		if prev.Col != p.Col && prev.Row != p.Row {
			if !g.IsTileWalkable(Point{Col: p.Col, Row: prev.Row}) ||
				!g.IsTileWalkable(Point{Col: prev.Col, Row: p.Row}) {
				return false
			}
		}
	}
	return true
}
