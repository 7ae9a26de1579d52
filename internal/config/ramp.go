package config

// Ramp is a linear difficulty curve clamped between Start and Limit. Rate may
// be negative for quantities that tighten by shrinking, such as intervals.
type Ramp struct {
	Start float64 `yaml:"start"`
	Rate  float64 `yaml:"rate"`
	Limit float64 `yaml:"limit"`
}

// At returns the ramp value after x units of progress.
func (r Ramp) At(x float64) float64 {
	v := r.Start + r.Rate*x
	lo, hi := r.Start, r.Limit
	if lo > hi {
		lo, hi = hi, lo
	}
	return max(lo, min(hi, v))
}

// Flat returns a ramp that stays at its start value.
func (r Ramp) Flat() Ramp {
	return Ramp{Start: r.Start, Limit: r.Start}
}

// Shift moves the starting point a fraction of the way toward the limit.
func (r Ramp) Shift(level float64) Ramp {
	level = max(0, min(1, level))
	r.Start += (r.Limit - r.Start) * level
	return r
}
