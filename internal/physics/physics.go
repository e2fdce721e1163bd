// Package physics implements the ship's inertia model.
//
// Each tick the current speed fades toward zero; held input then accelerates
// it toward the input direction. The acceleration shrinks as the speed nears
// the limit, so a held key settles exactly at the limit; Params.Validate
// rejects tunings where it cannot.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDirection is returned for input directions outside {-1, 0, 1}.
var ErrInvalidDirection = errors.New("physics: direction must be -1, 0 or 1")

// Params tunes the inertia model.
type Params struct {
	Limit        float64 // Maximum speed magnitude, cells per tick
	Acceleration float64 // Speed gained per tick at rest
	Fading       float64 // Fraction of speed kept each tick, in [0, 1]
	Deadzone     float64 // Speeds below this snap to zero
}

// DefaultParams returns the tuning used by the ship.
func DefaultParams() Params {
	return Params{
		Limit:        2,
		Acceleration: 0.75,
		Fading:       0.8,
		Deadzone:     0.1,
	}
}

// Validate checks that the parameters describe a usable model.
func (p Params) Validate() error {
	if p.Limit <= 0 {
		return fmt.Errorf("physics: limit must be positive, got %v", p.Limit)
	}
	if p.Fading < 0 || p.Fading > 1 {
		return fmt.Errorf("physics: fading must be in [0, 1], got %v", p.Fading)
	}
	if p.Acceleration < 0 {
		return fmt.Errorf("physics: acceleration must not be negative, got %v", p.Acceleration)
	}
	if p.Deadzone < 0 {
		return fmt.Errorf("physics: deadzone must not be negative, got %v", p.Deadzone)
	}
	// From rest the first push must survive the deadzone.
	if p.Acceleration <= p.Deadzone {
		return fmt.Errorf("physics: acceleration %v must exceed deadzone %v", p.Acceleration, p.Deadzone)
	}
	// A held key at the limit must end the tick at the limit again,
	// otherwise the speed settles below it.
	if p.Limit*p.Fading+p.Acceleration*math.Cos(p.Fading) < p.Limit {
		return fmt.Errorf("physics: acceleration %v cannot hold speed %v with fading %v", p.Acceleration, p.Limit, p.Fading)
	}
	return nil
}

// UpdateVelocity applies one tick of inertia to both axes.
func UpdateVelocity(rowSpeed, colSpeed float64, rowDir, colDir int, p Params) (float64, float64, error) {
	if !validDirection(rowDir) || !validDirection(colDir) {
		return rowSpeed, colSpeed, fmt.Errorf("%w: got (%d, %d)", ErrInvalidDirection, rowDir, colDir)
	}
	return axis(rowSpeed, rowDir, p), axis(colSpeed, colDir, p), nil
}

func validDirection(d int) bool {
	return d >= -1 && d <= 1
}

// axis updates the speed along a single axis.
func axis(speed float64, dir int, p Params) float64 {
	limit := math.Abs(p.Limit)
	speed *= p.Fading

	if dir != 0 {
		delta := math.Cos(speed/limit) * p.Acceleration
		if dir > 0 {
			speed += delta
		} else {
			speed -= delta
		}
		speed = math.Max(-limit, math.Min(limit, speed))
	}

	if math.Abs(speed) < p.Deadzone {
		speed = 0
	}
	return speed
}
