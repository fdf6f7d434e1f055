package grain

// Release returns an allocated slot to the free list without waiting for
// its grain to finish. Grains only end by playing out, so this exists for
// tests that need to free a slot that was never initialised.
func (p *Pool) Release(h Handle) bool {
	if p.slot(h) == nil {
		return false
	}
	for i, idx := range p.active {
		if idx == h.index {
			p.active = append(p.active[:i], p.active[i+1:]...)
			break
		}
	}
	p.reclaim(h.index)
	return true
}
