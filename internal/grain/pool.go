package grain

import "github.com/tphakala/go-granular/internal/window"

// Handle refers to a pool slot. A handle goes stale once its grain is
// reclaimed; stale handles are rejected rather than aliasing a newer grain.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	grain Grain
	gen   uint32
	inUse bool
}

// Pool is a fixed arena of grain slots with a free-list stack and a dense
// list of occupied slots. All storage is reserved by NewPool; Allocate,
// Mix and Prune never allocate.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	slots  []slot
	free   []uint32
	active []uint32
}

// NewPool reserves capacity grain slots. A non-positive capacity selects
// DefaultCapacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool{
		slots:  make([]slot, capacity),
		free:   make([]uint32, 0, capacity),
		active: make([]uint32, 0, capacity),
	}
	p.fillFree()
	return p
}

// fillFree stacks every slot so that low indices are handed out first.
func (p *Pool) fillFree() {
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.free = append(p.free, uint32(i))
	}
}

// Allocate reserves a free slot. It returns false when the pool is
// saturated; that is backpressure, not an error.
func (p *Pool) Allocate() (Handle, bool) {
	n := len(p.free)
	if n == 0 {
		return Handle{}, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]

	s := &p.slots[idx]
	s.gen++
	s.inUse = true
	s.grain = Grain{}
	p.active = append(p.active, idx)
	return Handle{index: idx, gen: s.gen}, true
}

// Init binds playback parameters to an allocated slot and makes its grain
// audible. It returns false for stale or foreign handles.
func (p *Pool) Init(h Handle, start, stop int64, rate float64, shape window.Shape) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	s.grain.Init(start, stop, rate, shape)
	return true
}

// Grain returns a copy of the grain behind h.
func (p *Pool) Grain(h Handle) (Grain, bool) {
	s := p.slot(h)
	if s == nil {
		return Grain{}, false
	}
	return s.grain, true
}

func (p *Pool) slot(h Handle) *slot {
	if int(h.index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.index]
	if !s.inUse || s.gen != h.gen {
		return nil
	}
	return s
}

func (p *Pool) reclaim(idx uint32) {
	s := &p.slots[idx]
	s.inUse = false
	s.grain = Grain{}
	p.free = append(p.free, idx)
}

// Mix sums one SampleAndTick of every occupied slot. Finished grains stay
// in place until Prune, so a grain's final sample is always mixed.
func (p *Pool) Mix(src Source) float64 {
	var sum float64
	for _, idx := range p.active {
		sum += p.slots[idx].grain.SampleAndTick(src)
	}
	return sum
}

// Prune reclaims every finished grain and returns how many were freed.
// Slots allocated but not yet initialised are kept. Surviving grains keep
// their relative order.
func (p *Pool) Prune() int {
	kept := p.active[:0]
	freed := 0
	for _, idx := range p.active {
		g := &p.slots[idx].grain
		if g.live && g.done {
			p.reclaim(idx)
			freed++
			continue
		}
		kept = append(kept, idx)
	}
	p.active = kept
	return freed
}

// ForEach calls fn with a copy of every occupied slot's grain in mixing
// order.
func (p *Pool) ForEach(fn func(Grain)) {
	for _, idx := range p.active {
		fn(p.slots[idx].grain)
	}
}

// Reset reclaims every slot. Outstanding handles go stale.
func (p *Pool) Reset() {
	for _, idx := range p.active {
		p.slots[idx].inUse = false
		p.slots[idx].grain = Grain{}
	}
	p.active = p.active[:0]
	p.fillFree()
}

// ActiveCount returns the number of occupied slots.
func (p *Pool) ActiveCount() int { return len(p.active) }

// Capacity returns the fixed number of slots.
func (p *Pool) Capacity() int { return len(p.slots) }

// Free returns the number of slots available to Allocate.
func (p *Pool) Free() int { return len(p.free) }
