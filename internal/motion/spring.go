package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// SpringParams are physical mass-spring-damper coefficients.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// AngularFrequency is sqrt(k/m).
func (p SpringParams) AngularFrequency() float64 {
	if p.Mass <= 0 || p.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)).
func (p SpringParams) DampingRatio() float64 {
	if p.Mass <= 0 || p.Stiffness <= 0 {
		return 1
	}
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

// Spring drives a value with a damped harmonic oscillator. Redirecting only
// moves the equilibrium; position and velocity carry over.
type Spring struct {
	params  SpringParams
	spring  harmonica.Spring
	dt      time.Duration
	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewSpring creates a spring at rest at initial.
func NewSpring(params SpringParams, initial float64) *Spring {
	return &Spring{
		params:  params,
		pos:     initial,
		target:  initial,
		settled: true,
	}
}

// Params returns the coefficients the spring was built with.
func (s *Spring) Params() SpringParams { return s.params }

func (s *Spring) SetTarget(target float64) {
	s.target = target
	s.settled = s.atRest()
}

func (s *Spring) Target() float64   { return s.target }
func (s *Spring) Value() float64    { return s.pos }
func (s *Spring) Velocity() float64 { return s.vel }
func (s *Spring) Settled() bool     { return s.settled }

// Step advances the simulation by dt. Coefficients are recomputed only when
// the frame duration changes.
func (s *Spring) Step(dt time.Duration) {
	if s.settled || dt <= 0 {
		return
	}
	if dt != s.dt {
		s.dt = dt
		s.spring = harmonica.NewSpring(dt.Seconds(), s.params.AngularFrequency(), s.params.DampingRatio())
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.atRest() {
		s.pos = s.target
		s.vel = 0
		s.settled = true
	}
}

func (s *Spring) atRest() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}

var _ Driver = (*Spring)(nil)
