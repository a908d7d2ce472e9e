package raster

import "image"

// circle walks the midpoint circle from the top of the circle down to the
// 45° diagonal, mirroring every accepted point into all eight octants.
func circle(cx, cy, r int, plot func(x, y int)) {
	x, y := 0, r
	dp := 3 - 2*r
	octants(cx, cy, x, y, plot)
	for y >= x {
		x++
		if dp > 0 {
			y--
			dp += 4*(x-y) + 10
		} else {
			dp += 4*x + 6
		}
		octants(cx, cy, x, y, plot)
	}
}

func octants(cx, cy, dx, dy int, plot func(x, y int)) {
	plot(cx-dx, cy-dy)
	plot(cx+dx, cy-dy)
	plot(cx-dx, cy+dy)
	plot(cx+dx, cy+dy)
	plot(cx-dy, cy-dx)
	plot(cx+dy, cy-dx)
	plot(cx-dy, cy+dx)
	plot(cx+dy, cy+dx)
}

// line picks the shallow or steep variant by slope and always iterates in
// increasing x (shallow) or y (steep). The far endpoint is not plotted.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			lineShallow(x1, y1, x0, y0, plot)
		} else {
			lineShallow(x0, y0, x1, y1, plot)
		}
		return
	}
	if y0 > y1 {
		lineSteep(x1, y1, x0, y0, plot)
	} else {
		lineSteep(x0, y0, x1, y1, plot)
	}
}

func lineShallow(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0
	for x := x0; x < x1; x++ {
		plot(x, y)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

func lineSteep(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y < y1; y++ {
		plot(x, y)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

// CirclePoints returns the pixels a circle would light, octant duplicates
// included.
func CirclePoints(cx, cy, r int) []image.Point {
	var pts []image.Point
	circle(cx, cy, r, func(x, y int) { pts = append(pts, image.Pt(x, y)) })
	return pts
}

// LinePoints returns the pixels a line would light.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	var pts []image.Point
	line(x0, y0, x1, y1, func(x, y int) { pts = append(pts, image.Pt(x, y)) })
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
