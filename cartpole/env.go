// Package cartpole is the classic pole-balancing environment on the
// single-step contract consumed by the multistep wrapper.
package cartpole

import (
	"math"

	"github.com/zeu5/multistep-env/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const (
	gravity        = 9.81
	massCart       = 1.0
	massPole       = 0.1
	poleLength     = 0.5
	totalMass      = massCart + massPole
	poleMassLength = massPole * poleLength
	forceMax       = 10.0
	tau            = 0.02

	xThreshold     = 2.4
	thetaThreshold = 12.0 * math.Pi / 180.0
	maxSteps       = 500
)

type state struct {
	x        float64
	xDot     float64
	theta    float64
	thetaDot float64
}

func (s state) frame() types.Frame {
	return types.VecFrame(s.x, s.xDot, s.theta, s.thetaDot)
}

// Environment holds the cart state. An action is a single value, the
// cart is pushed left when it is negative and right otherwise. The
// episode truncates after 500 steps.
type Environment struct {
	state state
	steps int
	rand  *rand.Rand
}

var _ types.Environment = &Environment{}

func NewEnvironment(seed uint64) *Environment {
	return &Environment{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (e *Environment) Reset() (types.Frame, error) {
	e.state = state{
		x:        e.rand.Float64()*0.1 - 0.05,
		xDot:     e.rand.Float64()*0.1 - 0.05,
		theta:    e.rand.Float64()*0.1 - 0.05,
		thetaDot: e.rand.Float64()*0.1 - 0.05,
	}
	e.steps = 0
	return e.state.frame(), nil
}

func (e *Environment) Step(action types.Action) (*types.StepResult, error) {
	force := forceMax
	if action.Vec != nil && action.Vec.AtVec(0) < 0 {
		force = -forceMax
	}

	s := e.state
	cosTheta := math.Cos(s.theta)
	sinTheta := math.Sin(s.theta)

	temp := (force + poleMassLength*s.thetaDot*s.thetaDot*sinTheta) / totalMass
	thetaAcc := (gravity*sinTheta - cosTheta*temp) /
		(poleLength * (4.0/3.0 - massPole*cosTheta*cosTheta/totalMass))
	xAcc := temp - poleMassLength*thetaAcc*cosTheta/totalMass

	e.state = state{
		x:        s.x + tau*s.xDot,
		xDot:     s.xDot + tau*xAcc,
		theta:    s.theta + tau*s.thetaDot,
		thetaDot: s.thetaDot + tau*thetaAcc,
	}
	e.steps++

	terminated := e.state.x < -xThreshold || e.state.x > xThreshold ||
		e.state.theta < -thetaThreshold || e.state.theta > thetaThreshold
	truncated := e.steps >= maxSteps
	reward := 1.0
	if terminated {
		reward = 0.0
	}

	return &types.StepResult{
		Observation: e.state.frame(),
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   truncated,
		Info: map[string]*mat.VecDense{
			"pole_angle": mat.NewVecDense(1, []float64{e.state.theta}),
			"cart_x":     mat.NewVecDense(1, []float64{e.state.x}),
		},
	}, nil
}

func (e *Environment) ObservationSpace() types.Space {
	return &types.Box{
		Shape: []int{4},
		Low: mat.NewVecDense(4, []float64{
			-xThreshold * 2, math.Inf(-1), -thetaThreshold * 2, math.Inf(-1),
		}),
		High: mat.NewVecDense(4, []float64{
			xThreshold * 2, math.Inf(1), thetaThreshold * 2, math.Inf(1),
		}),
		Dtype: types.Float64,
	}
}

func (e *Environment) ActionSpace() types.Space {
	return types.NewBox(-1, 1, types.Float64, 1)
}

func MaxSteps() int {
	return maxSteps
}
