// Package grid is a multi-room grid world on the single-step contract.
// Rooms are connected by doors and the episode ends when the agent
// reaches the goal cell. Observations use a Dict space, which exercises
// per-key stacking in the multistep wrapper.
package grid

import (
	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// Directions encoded as the single action value.
const (
	Nothing = iota
	Up
	Down
	Left
	Right
	Next
)

type Position struct {
	I int
	J int
	K int
}

func (p Position) Eq(other Position) bool {
	return p.I == other.I && p.J == other.J && p.K == other.K
}

type Door struct {
	From Position
	To   Position
}

type Environment struct {
	Height int
	Width  int
	Rooms  int
	Doors  []Door
	Goal   Position

	curPos Position
	doors  int
}

var _ types.Environment = &Environment{}

func NewEnvironment(height, width, rooms int, goal Position, doors ...Door) *Environment {
	return &Environment{
		Height: height,
		Width:  width,
		Rooms:  rooms,
		Doors:  doors,
		Goal:   goal,
	}
}

func (g *Environment) observation() types.Frame {
	return types.RecordFrame(map[string][]float64{
		"position": {float64(g.curPos.I), float64(g.curPos.J)},
		"room":     {float64(g.curPos.K)},
	})
}

func (g *Environment) Reset() (types.Frame, error) {
	g.curPos = Position{0, 0, 0}
	g.doors = 0
	return g.observation(), nil
}

func (g *Environment) Step(action types.Action) (*types.StepResult, error) {
	direction := Nothing
	if action.Vec != nil {
		direction = int(action.Vec.AtVec(0))
	}

	crossed := false
	newPos := g.curPos
	switch direction {
	case Nothing:
	case Up:
		newPos.I = minInt(g.Height-1, g.curPos.I+1)
	case Down:
		newPos.I = maxInt(0, g.curPos.I-1)
	case Left:
		newPos.J = maxInt(0, g.curPos.J-1)
	case Right:
		newPos.J = minInt(g.Width-1, g.curPos.J+1)
	case Next:
		for _, d := range g.Doors {
			if d.From.Eq(g.curPos) {
				newPos = d.To
				crossed = true
				g.doors++
				break
			}
		}
	}
	g.curPos = newPos

	terminated := g.curPos.Eq(g.Goal)
	reward := -0.01
	if crossed {
		reward = 0.1
	}
	if terminated {
		reward = 1.0
	}
	doorFlag := 0.0
	if crossed {
		doorFlag = 1.0
	}

	return &types.StepResult{
		Observation: g.observation(),
		Reward:      reward,
		Terminated:  terminated,
		Info: map[string]*mat.VecDense{
			"doors_crossed": mat.NewVecDense(1, []float64{float64(g.doors)}),
			"at_door":       mat.NewVecDense(1, []float64{doorFlag}),
		},
	}, nil
}

func (g *Environment) ObservationSpace() types.Space {
	return types.NewDict().
		Set("position", &types.Box{
			Shape: []int{2},
			Low:   mat.NewVecDense(2, []float64{0, 0}),
			High:  mat.NewVecDense(2, []float64{float64(g.Height - 1), float64(g.Width - 1)}),
			Dtype: types.Int64,
		}).
		Set("room", &types.Box{
			Shape: []int{1},
			Low:   mat.NewVecDense(1, []float64{0}),
			High:  mat.NewVecDense(1, []float64{float64(g.Rooms - 1)}),
			Dtype: types.Int64,
		})
}

func (g *Environment) ActionSpace() types.Space {
	return types.NewBox(0, Next, types.Int64, 1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
