package roadrush

import (
	"math/rand"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Kind distinguishes hazards from pickups.
type Kind int

const (
	KindCar Kind = iota
	KindCoin
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindCoin {
		return "coin"
	}
	return "car"
}

// Obstacle is a car or coin scrolling down one lane.
type Obstacle struct {
	ID        int
	Lane      int
	Y         float64 // Top edge
	Kind      Kind
	Speed     float64 // Jitter multiplier applied to the base speed
	Collected bool
	Passed    bool
}

// Size returns the obstacle's width and height.
func (o Obstacle) Size(r Rules) (w, h float64) {
	if o.Kind == KindCoin {
		return r.Coin.Width, r.Coin.Height
	}
	return r.Car.Width, r.Car.Height
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box(r Rules) core.RectF {
	w, h := o.Size(r)
	return core.RectF{X: r.LaneX(o.Lane, w), Y: o.Y, W: w, H: h}
}

// spawn creates an obstacle just above the visible road.
func spawn(id int, r Rules, rng *rand.Rand) Obstacle {
	o := Obstacle{
		ID:    id,
		Lane:  rng.Intn(r.Lanes),
		Kind:  KindCar,
		Speed: r.JitterMin + rng.Float64()*(r.JitterMax-r.JitterMin),
	}
	if rng.Float64() < r.CoinChance {
		o.Kind = KindCoin
	}
	_, h := o.Size(r)
	o.Y = -h
	return o
}

// advance moves every obstacle down by dist scaled by its own speed, and
// drops the ones that left the road or were collected on an earlier frame.
// The input slice is not modified.
func advance(obs []Obstacle, r Rules, dist float64) []Obstacle {
	out := make([]Obstacle, 0, len(obs)+1)
	for _, o := range obs {
		if o.Collected {
			continue
		}
		o.Y += dist * o.Speed
		if o.Y > r.Height {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Visible returns the obstacles that should be drawn: collected coins are
// left out.
func Visible(obs []Obstacle) []Obstacle {
	out := make([]Obstacle, 0, len(obs))
	for _, o := range obs {
		if !o.Collected {
			out = append(out, o)
		}
	}
	return out
}
