package types

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Frame is one observation or one action. Its layout matches the
// environment's space: a Box value populates Vec, a Dict value populates
// Record with one vector per key.
type Frame struct {
	Vec    *mat.VecDense
	Record map[string]*mat.VecDense
}

// Action values have the same layout as observations, they conform to
// the action space instead.
type Action = Frame

// VecFrame builds a Box frame from raw values.
func VecFrame(values ...float64) Frame {
	return Frame{Vec: mat.NewVecDense(len(values), values)}
}

// RecordFrame builds a Dict frame from per-key values.
func RecordFrame(fields map[string][]float64) Frame {
	record := make(map[string]*mat.VecDense, len(fields))
	for k, v := range fields {
		record[k] = mat.NewVecDense(len(v), v)
	}
	return Frame{Record: record}
}

// Hash is a deterministic key for the frame, usable to index policy
// tables.
func (f Frame) Hash() string {
	if f.Vec != nil {
		return vecHash(f.Vec)
	}
	keys := make([]string, 0, len(f.Record))
	for k := range f.Record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + vecHash(f.Record[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func vecHash(v *mat.VecDense) string {
	parts := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		parts[i] = fmt.Sprintf("%g", v.AtVec(i))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Stacked is a fixed window of frames presented as one observation.
// Box frames stack into one matrix with one row per frame, Dict frames
// stack into one matrix per key.
type Stacked struct {
	Mat    *mat.Dense
	Record map[string]*mat.Dense
}

// Frames is the window length of the stack.
func (s Stacked) Frames() int {
	if s.Mat != nil {
		rows, _ := s.Mat.Dims()
		return rows
	}
	for _, m := range s.Record {
		rows, _ := m.Dims()
		return rows
	}
	return 0
}

// Hash is a deterministic key for the stacked observation.
func (s Stacked) Hash() string {
	if s.Mat != nil {
		return denseHash(s.Mat)
	}
	keys := make([]string, 0, len(s.Record))
	for k := range s.Record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + denseHash(s.Record[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func denseHash(m *mat.Dense) string {
	rows, cols := m.Dims()
	parts := make([]string, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			parts = append(parts, fmt.Sprintf("%g", m.At(i, j)))
		}
	}
	return "(" + strings.Join(parts, ",") + ")"
}
