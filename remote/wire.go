// Package remote serves a single-step environment over HTTP and exposes
// a client that implements the same contract, so a multistep wrapper
// can stack an environment running in another process. Calls are
// synchronous and single-flight, mirroring the local contract; there
// are no retries.
package remote

import (
	"fmt"

	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

type wireFrame struct {
	Vec    []float64            `json:"vec,omitempty"`
	Record map[string][]float64 `json:"record,omitempty"`
}

func encodeFrame(f types.Frame) wireFrame {
	if f.Vec != nil {
		return wireFrame{Vec: rawValues(f.Vec)}
	}
	record := make(map[string][]float64, len(f.Record))
	for k, v := range f.Record {
		record[k] = rawValues(v)
	}
	return wireFrame{Record: record}
}

func decodeFrame(w wireFrame) types.Frame {
	if w.Vec != nil {
		return types.VecFrame(w.Vec...)
	}
	return types.RecordFrame(w.Record)
}

func rawValues(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.AtVec(i)
	}
	return out
}

type wireSpace struct {
	Kind   string               `json:"kind"`
	Shape  []int                `json:"shape,omitempty"`
	Low    []float64            `json:"low,omitempty"`
	High   []float64            `json:"high,omitempty"`
	Dtype  string               `json:"dtype,omitempty"`
	Keys   []string             `json:"keys,omitempty"`
	Spaces map[string]wireSpace `json:"spaces,omitempty"`
}

func encodeSpace(s types.Space) (wireSpace, error) {
	switch sp := s.(type) {
	case *types.Box:
		return wireSpace{
			Kind:  "box",
			Shape: sp.Shape,
			Low:   rawValues(sp.Low),
			High:  rawValues(sp.High),
			Dtype: sp.Dtype.String(),
		}, nil
	case *types.Dict:
		sub := make(map[string]wireSpace, len(sp.Keys))
		for _, k := range sp.Keys {
			enc, err := encodeSpace(sp.Spaces[k])
			if err != nil {
				return wireSpace{}, fmt.Errorf("key %q: %w", k, err)
			}
			sub[k] = enc
		}
		return wireSpace{Kind: "dict", Keys: sp.Keys, Spaces: sub}, nil
	}
	return wireSpace{}, fmt.Errorf("cannot encode space %T", s)
}

func decodeSpace(w wireSpace) (types.Space, error) {
	switch w.Kind {
	case "box":
		dtype, err := parseDtype(w.Dtype)
		if err != nil {
			return nil, err
		}
		return &types.Box{
			Shape: w.Shape,
			Low:   mat.NewVecDense(len(w.Low), w.Low),
			High:  mat.NewVecDense(len(w.High), w.High),
			Dtype: dtype,
		}, nil
	case "dict":
		dict := types.NewDict()
		for _, k := range w.Keys {
			sub, err := decodeSpace(w.Spaces[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			dict.Set(k, sub)
		}
		return dict, nil
	}
	return nil, fmt.Errorf("cannot decode space kind %q", w.Kind)
}

func parseDtype(s string) (types.Dtype, error) {
	for _, d := range []types.Dtype{types.Uint8, types.Int32, types.Int64, types.Float32, types.Float64} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dtype %q", s)
}

type resetResponse struct {
	Observation wireFrame `json:"observation"`
}

type stepRequest struct {
	Action wireFrame `json:"action"`
}

type stepResponse struct {
	Observation wireFrame            `json:"observation"`
	Reward      float64              `json:"reward"`
	Terminated  bool                 `json:"terminated"`
	Truncated   bool                 `json:"truncated"`
	Info        map[string][]float64 `json:"info"`
}

type spacesResponse struct {
	ObservationSpace wireSpace `json:"observation_space"`
	ActionSpace      wireSpace `json:"action_space"`
}

type errorResponse struct {
	Error string `json:"error"`
}
