package canvas

// TouchStart begins a touch gesture with the given active touch points.
//
// One finger behaves like a pointer press on target. A second finger ends
// any pan in progress, cancels a drag (the note returns to where it was
// picked up) and starts a pinch zoom instead; two fingers never pan.
func (c *Canvas) TouchStart(points []Point, target Target) {
	switch {
	case len(points) >= 2:
		if c.panning {
			c.endPan()
		}
		c.cancelDrag()
		c.pinching = true
		c.pinchDist = Distance(points[0], points[1])
		c.pinchZoom = c.zoom
		c.commitView()
	case len(points) == 1 && !c.pinching:
		c.PointerDown(points[0], target)
	}
}

// TouchMove updates the gesture with the current touch points.
func (c *Canvas) TouchMove(points []Point) {
	if c.pinching {
		if len(points) < 2 || c.pinchDist == 0 {
			return
		}
		c.setZoom(c.pinchZoom * Distance(points[0], points[1]) / c.pinchDist)
		return
	}

	if len(points) == 1 {
		c.PointerMove(points[0])
	}
}

// TouchEnd is called when fingers are lifted; remaining is the number of
// touch points still down. The gesture ends like PointerUp once the last
// finger of a pan or drag is lifted.
func (c *Canvas) TouchEnd(remaining int) (*PendingMove, bool) {
	if c.pinching {
		if remaining < 2 {
			c.pinching = false
			c.commitView()
		}
		return nil, false
	}

	if remaining > 0 {
		return nil, false
	}

	return c.PointerUp()
}

// IsPinching reports whether a two-finger zoom is in progress.
func (c *Canvas) IsPinching() bool { return c.pinching }
