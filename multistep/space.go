package multistep

import (
	"fmt"

	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// RepeatedSpace describes n stacked copies of a space along a new
// leading axis. A Box of shape (s...) becomes a Box of shape (n, s...)
// with its bounds tiled n times; a Dict is mapped recursively with key
// order preserved. The dtype of a Box carries over unchanged.
func RepeatedSpace(space types.Space, n int) (types.Space, error) {
	switch s := space.(type) {
	case *types.Box:
		return repeatedBox(s, n), nil
	case *types.Dict:
		out := types.NewDict()
		for _, k := range s.Keys {
			sub, err := RepeatedSpace(s.Spaces[k], n)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out.Set(k, sub)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSpace, space)
	}
}

func repeatedBox(box *types.Box, n int) *types.Box {
	shape := make([]int, 0, len(box.Shape)+1)
	shape = append(shape, n)
	shape = append(shape, box.Shape...)

	flat := box.FlatLen()
	low := make([]float64, n*flat)
	high := make([]float64, n*flat)
	for i := 0; i < n; i++ {
		for j := 0; j < flat; j++ {
			low[i*flat+j] = box.Low.AtVec(j)
			high[i*flat+j] = box.High.AtVec(j)
		}
	}
	return &types.Box{
		Shape: shape,
		Low:   mat.NewVecDense(n*flat, low),
		High:  mat.NewVecDense(n*flat, high),
		Dtype: box.Dtype,
	}
}
