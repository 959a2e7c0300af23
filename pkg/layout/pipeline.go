package layout

// Client is an owner of a node tree that the pipeline can re-lay out.
// Windows implement it.
type Client interface {
	PerformLayout()
}

// PipelineOwner tracks clients that need layout or paint.
//
// Scheduling is deferred work: nothing is laid out or painted when a client
// is scheduled. FlushLayout runs the pending layouts in scheduling order;
// FlushPaint hands the clients needing a redraw to whoever draws the frame.
type PipelineOwner struct {
	dirtyLayout    []Client
	dirtyLayoutSet map[Client]bool // O(1) dedup check
	dirtyPaint     []Client
	dirtyPaintSet  map[Client]bool
}

// ScheduleLayout marks a client as needing layout. Layout implies paint.
func (p *PipelineOwner) ScheduleLayout(c Client) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[Client]bool)
	}
	if p.dirtyLayoutSet[c] {
		return
	}
	p.dirtyLayoutSet[c] = true
	p.dirtyLayout = append(p.dirtyLayout, c)
	p.SchedulePaint(c)
}

// SchedulePaint marks a client as needing paint.
func (p *PipelineOwner) SchedulePaint(c Client) {
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[Client]bool)
	}
	if p.dirtyPaintSet[c] {
		return
	}
	p.dirtyPaintSet[c] = true
	p.dirtyPaint = append(p.dirtyPaint, c)
}

// Forget drops a client from both queues, e.g. when its window is destroyed.
func (p *PipelineOwner) Forget(c Client) {
	if p.dirtyLayoutSet[c] {
		delete(p.dirtyLayoutSet, c)
		p.dirtyLayout = remove(p.dirtyLayout, c)
	}
	if p.dirtyPaintSet[c] {
		delete(p.dirtyPaintSet, c)
		p.dirtyPaint = remove(p.dirtyPaint, c)
	}
}

// NeedsLayout reports if any client needs layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return len(p.dirtyLayout) > 0
}

// NeedsPaint reports if any client needs paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return len(p.dirtyPaint) > 0
}

// FlushLayout lays out every scheduled client. Clients scheduled while
// flushing are processed in the same call.
func (p *PipelineOwner) FlushLayout() {
	for len(p.dirtyLayout) > 0 {
		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		p.dirtyLayoutSet = nil
		for _, c := range dirty {
			c.PerformLayout()
		}
	}
}

// FlushPaint returns the clients needing paint in scheduling order and
// clears the queue.
func (p *PipelineOwner) FlushPaint() []Client {
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	p.dirtyPaintSet = nil
	return dirty
}

func remove(list []Client, c Client) []Client {
	out := list[:0]
	for _, x := range list {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}
