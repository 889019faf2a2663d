package render

import (
	"slices"
)

// ScreenVertex is a polygon corner in pixel space with the attributes that
// are interpolated across the polygon.
type ScreenVertex struct {
	X, Y  int
	Z     float64 // Depth, smaller is nearer
	U, V  float64 // Texture coordinates
	Color MaterialColor
}

// shading holds the per-pixel state the rasterizer consults.
type shading struct {
	depthTest   bool
	texture     *Texture // nil when texturing is off
	textureMode TextureMode
}

// edge tracks one non-horizontal polygon edge across scanlines. x follows
// the true line with an integer DDA: x advances by di per scanline and err
// accumulates rem until it reaches dy.
type edge struct {
	x0, y0, x1, y1 int // Start is the lower end: y0 < y1

	dy, sx, di, rem int
	x, err          int

	color, dc MaterialColor
	z, dz     float64
	u, du     float64
	v, dv     float64
}

func newEdge(a, b ScreenVertex) edge {
	if a.Y > b.Y {
		a, b = b, a
	}
	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y}
	e.dy = b.Y - a.Y
	dx := abs(b.X - a.X)
	switch {
	case dx == 0:
		e.sx = 0
	case b.X > a.X:
		e.sx = 1
	default:
		e.sx = -1
	}
	e.di = dx / e.dy * e.sx
	e.rem = dx % e.dy
	e.x = a.X

	fdy := float64(e.dy)
	e.color = a.Color
	e.dc = b.Color.Sub(a.Color).Div(fdy)
	e.z, e.dz = a.Z, (b.Z-a.Z)/fdy
	e.u, e.du = a.U, (b.U-a.U)/fdy
	e.v, e.dv = a.V, (b.V-a.V)/fdy
	return e
}

// compareEdges orders edges by start y, then start x, then by slope so that
// of two edges leaving the same point the leftmost comes first.
func compareEdges(a, b edge) int {
	if a.y0 != b.y0 {
		return a.y0 - b.y0
	}
	if a.x0 != b.x0 {
		return a.x0 - b.x0
	}
	l := (b.y1 - b.y0) * (a.x1 - a.x0)
	r := (a.y1 - a.y0) * (b.x1 - b.x0)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// step advances the edge to the next scanline.
func (e *edge) step() {
	e.x += e.di
	e.err += e.rem
	if e.err >= e.dy {
		e.err -= e.dy
		e.x += e.sx
	}
	e.color = e.color.Add(e.dc)
	e.z += e.dz
	e.u += e.du
	e.v += e.dv
}

// advance moves the edge k scanlines forward in one step.
func (e *edge) advance(k int) {
	if k <= 0 {
		return
	}
	acc := e.err + e.rem*k
	e.x += e.di*k + e.sx*(acc/e.dy)
	e.err = acc % e.dy
	fk := float64(k)
	e.color = e.color.Add(e.dc.Scale(fk))
	e.z += e.dz * fk
	e.u += e.du * fk
	e.v += e.dv * fk
}

// activeList is a doubly linked list threaded through an arena of edges by
// index. -1 terminates the list and, as an insertion point, stands for the
// head.
type activeList struct {
	next, prev []int
	head       int
}

func newActiveList(n int) *activeList {
	l := &activeList{
		next: make([]int, n),
		prev: make([]int, n),
		head: -1,
	}
	for i := range n {
		l.next[i], l.prev[i] = -1, -1
	}
	return l
}

func (l *activeList) after(at int) int {
	if at < 0 {
		return l.head
	}
	return l.next[at]
}

// insertAfter links i behind at; at == -1 inserts at the front.
func (l *activeList) insertAfter(at, i int) {
	nx := l.after(at)
	l.prev[i] = at
	l.next[i] = nx
	if nx >= 0 {
		l.prev[nx] = i
	}
	if at < 0 {
		l.head = i
	} else {
		l.next[at] = i
	}
}

// insert links edge i behind cursor, further along past every edge left
// of it, and returns i as the next cursor.
func (l *activeList) insert(edges []edge, cursor, i int) int {
	for nx := l.after(cursor); nx >= 0 && edges[nx].x < edges[i].x; nx = l.after(cursor) {
		cursor = nx
	}
	l.insertAfter(cursor, i)
	return i
}

// remove unlinks i. Its own links are left intact so a traversal may
// continue from it.
func (l *activeList) remove(i int) {
	if l.prev[i] >= 0 {
		l.next[l.prev[i]] = l.next[i]
	} else {
		l.head = l.next[i]
	}
	if l.next[i] >= 0 {
		l.prev[l.next[i]] = l.prev[i]
	}
}

// fillPolygon scan-converts a polygon given in pixel coordinates into fb.
func fillPolygon(fb *Framebuffer, sh shading, verts []ScreenVertex) error {
	n := len(verts)
	if n < 3 {
		return ErrTooFewVertices
	}

	edges := make([]edge, 0, n)
	for i := range n {
		a, b := verts[i], verts[(i+1)%n]
		if a.Y == b.Y {
			continue
		}
		edges = append(edges, newEdge(a, b))
	}
	if len(edges) == 0 {
		return nil
	}
	slices.SortStableFunc(edges, compareEdges)

	ael := newActiveList(len(edges))
	next := 0
	y := edges[0].y0
	if y < 0 {
		// Rows below the buffer cannot produce pixels: bring every edge
		// crossing row 0 there directly.
		y = 0
		for ; next < len(edges) && edges[next].y0 < 0; next++ {
			e := &edges[next]
			if e.y1 <= 0 {
				continue
			}
			e.advance(-e.y0)
			ael.insert(edges, -1, next)
		}
	}
	cursor := -1
	for ; next < len(edges) && edges[next].y0 == y; next++ {
		cursor = ael.insert(edges, cursor, next)
	}

	// Scanlines above the buffer cannot produce pixels either.
	for ael.head >= 0 && y < fb.Height {
		for node := ael.head; node >= 0; {
			right := ael.next[node]
			if right < 0 {
				break
			}
			fb.span(sh, y, &edges[node], &edges[right])
			node = ael.next[right]
		}

		y++
		for node := ael.head; node >= 0; node = ael.next[node] {
			if edges[node].y1 == y {
				ael.remove(node)
			}
		}
		for node := ael.head; node >= 0; node = ael.next[node] {
			edges[node].step()
		}

		cursor = -1
		for ; next < len(edges) && edges[next].y0 == y; next++ {
			cursor = ael.insert(edges, cursor, next)
		}
	}
	return nil
}

// span fills the pixels of scanline y lying inside the left and right edges.
func (fb *Framebuffer) span(sh shading, y int, left, right *edge) {
	// The left edge's exact x is x + sx*err/dy; start at its ceiling.
	xl := left.x
	if left.err != 0 && left.sx == 1 {
		xl++
	}
	// An integral right boundary lies outside the polygon.
	xr := right.x
	if right.err == 0 || right.sx == -1 {
		xr--
	}

	c, z, u, v := left.color, left.z, left.u, left.v
	dc := right.color.Sub(c)
	dz, du, dv := right.z-z, right.u-u, right.v-v
	if xr != xl {
		w := float64(xr - xl)
		dc = dc.Div(w)
		dz, du, dv = dz/w, du/w, dv/w
	}

	if y < 0 || y >= fb.Height {
		return
	}
	if xl < 0 {
		k := float64(-xl)
		c = c.Add(dc.Scale(k))
		z, u, v = z+dz*k, u+du*k, v+dv*k
		xl = 0
	}
	xr = min(xr, fb.Width-1)

	i := fb.index(xl, y)
	for x := xl; x <= xr; x++ {
		if !sh.depthTest || z < fb.Depth[i] {
			fb.Depth[i] = z
			color := c.ToARGB()
			if sh.texture != nil {
				color = sh.textureMode.Combine(color, sh.texture.Sample(u, v))
			}
			fb.Pixels[i] = color
		}
		c = c.Add(dc)
		z, u, v = z+dz, u+du, v+dv
		i++
	}
}
