package games

import (
	"math"

	"github.com/fintechx/casino/pkg/random"
)

// Board geometry and physics constants. These mirror the animation layer
// exactly: the same simulation decides both the rendered path and the
// landing bucket.
const (
	plinkoRows     = 16
	plinkoSpacing  = 40.0
	plinkoStartY   = 50.0
	plinkoWidth    = 800.0
	plinkoGravity  = 0.25
	plinkoFriction = 0.98
	plinkoBounce   = 0.7
	plinkoPegHit   = 10.0
	plinkoMaxSteps = 10000
)

// PlinkoMultipliers is the fixed symmetric 17-bucket payout table, edges
// highest.
var PlinkoMultipliers = [17]float64{
	110, 41, 10, 5, 3, 1.5, 1, 0.5, 0.3, 0.5, 1, 1.5, 3, 5, 10, 41, 110,
}

// Plinko drops a ball through a 16-row peg pyramid under simple gravity
// with jittered elastic peg collisions; the landing bucket indexes the
// multiplier table.
type Plinko struct{}

// PlinkoDetails reports where the ball landed
type PlinkoDetails struct {
	Bucket int     `json:"bucket"`
	Steps  int     `json:"steps"`
	FinalX float64 `json:"finalX"`
}

// Name returns the game identifier
func (Plinko) Name() string { return "PLINKO" }

// Play resolves one drop; plinko takes no parameters
func (g Plinko) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	return PlayPlinko(src, stake)
}

type peg struct {
	x, y float64
}

// PlayPlinko simulates one ball drop. The payout is floored to a whole
// amount, matching the display currency.
func PlayPlinko(src random.Source, stake float64) (*Outcome, error) {
	pegs := buildPegs()
	bottomY := plinkoStartY + plinkoRows*plinkoSpacing

	x := plinkoWidth/2 + (src.Float64()-0.5)*10
	y := 10.0
	vx := (src.Float64() - 0.5) * 2
	vy := 0.0

	steps := 0
	for y <= bottomY+20 && steps < plinkoMaxSteps {
		steps++
		vy += plinkoGravity
		vx *= plinkoFriction
		x += vx
		y += vy

		for _, p := range pegs {
			dx := x - p.x
			dy := y - p.y
			dist := math.Hypot(dx, dy)
			if dist < plinkoPegHit {
				angle := math.Atan2(dy, dx)
				speed := math.Hypot(vx, vy)
				jitter := (src.Float64() - 0.5) * 0.5
				vx = math.Cos(angle+jitter) * speed * plinkoBounce
				vy = math.Sin(angle+jitter) * speed * plinkoBounce

				overlap := plinkoPegHit - dist
				x += math.Cos(angle) * overlap
				y += math.Sin(angle) * overlap
			}
		}
	}

	bucket := landingBucket(x)
	multiplier := PlinkoMultipliers[bucket]

	return &Outcome{
		Game:       "PLINKO",
		Multiplier: multiplier,
		Payout:     math.Floor(stake * multiplier),
		Details:    PlinkoDetails{Bucket: bucket, Steps: steps, FinalX: x},
	}, nil
}

func buildPegs() []peg {
	pegs := make([]peg, 0, plinkoRows*(plinkoRows+1)/2)
	for row := 0; row < plinkoRows; row++ {
		for col := 0; col <= row; col++ {
			pegs = append(pegs, peg{
				x: plinkoWidth/2 - float64(row)*plinkoSpacing/2 + float64(col)*plinkoSpacing,
				y: plinkoStartY + float64(row)*plinkoSpacing,
			})
		}
	}
	return pegs
}

// landingBucket maps a final x position to a bucket index, clamped to the
// table bounds
func landingBucket(x float64) int {
	relativeX := x - (plinkoWidth/2 - plinkoRows*plinkoSpacing/2)
	bucket := int(math.Floor((relativeX + plinkoSpacing/2) / plinkoSpacing))
	if bucket < 0 {
		bucket = 0
	}
	if bucket > len(PlinkoMultipliers)-1 {
		bucket = len(PlinkoMultipliers) - 1
	}
	return bucket
}
