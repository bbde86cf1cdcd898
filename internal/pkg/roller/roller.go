// Package roller provides the randomness sources used by dice rolls and
// weighted selection. Both are injectable so game flows stay deterministic
// under test.
package roller

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/fogoseda/party-api/internal/errors"
)

// Roller produces die results and uniform floats
type Roller interface {
	// Roll rolls count dice of the given size and returns the total
	Roll(count, size int) (int, error)

	// Float64 returns a uniform value in [0,1)
	Float64() float64
}

// Toolkit implements Roller using rpg-toolkit dice for die rolls and
// math/rand for the selection draw
type Toolkit struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewToolkit creates a new toolkit-backed roller
func NewToolkit() *Toolkit {
	return &Toolkit{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 // visual randomness only
	}
}

// Roll rolls count dice of the given size and returns the total
func (r *Toolkit) Roll(count, size int) (int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}
	return roll.GetValue(), nil
}

// Float64 returns a uniform value in [0,1)
func (r *Toolkit) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// Scripted implements Roller with preset results, for tests. Rolls and
// floats are consumed in order; when a sequence runs out the last value
// repeats.
type Scripted struct {
	Rolls  []int
	Floats []float64

	ri, fi int
}

// Roll returns the next scripted roll
func (r *Scripted) Roll(count, size int) (int, error) {
	if len(r.Rolls) == 0 {
		return count, nil
	}
	v := r.Rolls[r.ri]
	if r.ri < len(r.Rolls)-1 {
		r.ri++
	}
	return v, nil
}

// Float64 returns the next scripted float
func (r *Scripted) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[r.fi]
	if r.fi < len(r.Floats)-1 {
		r.fi++
	}
	return v
}
