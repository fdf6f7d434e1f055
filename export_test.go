package granular

import "github.com/tphakala/go-granular/internal/grain"

// Grains returns copies of the active grains in mixing order. Only safe
// from the goroutine driving Tick.
func (e *Engine) Grains() []grain.Grain {
	var out []grain.Grain
	e.pool.ForEach(func(g grain.Grain) { out = append(out, g) })
	return out
}
