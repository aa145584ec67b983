package types

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dtype is the declarative element type of a Box space. Frames are
// carried as float64 vectors at runtime, the dtype only describes the
// space.
type Dtype int

const (
	Uint8 Dtype = iota
	Int32
	Int64
	Float32
	Float64
)

func (d Dtype) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// Space describes the layout of observations or actions. It is a closed
// variant: a Box with elementwise bounds or a Dict of named sub spaces.
type Space interface {
	space()
}

// Box is a bounded numeric array space. Low and High hold the
// elementwise bounds over the flattened shape.
type Box struct {
	Shape []int
	Low   *mat.VecDense
	High  *mat.VecDense
	Dtype Dtype
}

var _ Space = &Box{}

func (b *Box) space() {}

// FlatLen is the number of elements of one frame of the space.
func (b *Box) FlatLen() int {
	l := 1
	for _, d := range b.Shape {
		l *= d
	}
	return l
}

func (b *Box) Validate() error {
	if len(b.Shape) == 0 {
		return fmt.Errorf("box has no shape")
	}
	for _, d := range b.Shape {
		if d <= 0 {
			return fmt.Errorf("box has non-positive dimension %d", d)
		}
	}
	if b.Low == nil || b.High == nil {
		return fmt.Errorf("box is missing bounds")
	}
	if b.Low.Len() != b.FlatLen() || b.High.Len() != b.FlatLen() {
		return fmt.Errorf("box bounds length (%d, %d) does not match flat shape length %d",
			b.Low.Len(), b.High.Len(), b.FlatLen())
	}
	return nil
}

// NewBox creates a box with uniform bounds over the given shape.
func NewBox(low, high float64, dtype Dtype, shape ...int) *Box {
	b := &Box{Shape: shape, Dtype: dtype}
	l := b.FlatLen()
	lows := make([]float64, l)
	highs := make([]float64, l)
	for i := 0; i < l; i++ {
		lows[i] = low
		highs[i] = high
	}
	b.Low = mat.NewVecDense(l, lows)
	b.High = mat.NewVecDense(l, highs)
	return b
}

// Dict is an ordered collection of named sub spaces. Keys preserves
// insertion order.
type Dict struct {
	Keys   []string
	Spaces map[string]Space
}

var _ Space = &Dict{}

func (d *Dict) space() {}

func NewDict() *Dict {
	return &Dict{
		Keys:   make([]string, 0),
		Spaces: make(map[string]Space),
	}
}

// Set adds or replaces a sub space. New keys go to the end of the order.
func (d *Dict) Set(key string, s Space) *Dict {
	if _, ok := d.Spaces[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Spaces[key] = s
	return d
}

func (d *Dict) Validate() error {
	if len(d.Keys) != len(d.Spaces) {
		return fmt.Errorf("dict keys out of sync with sub spaces")
	}
	for _, k := range d.Keys {
		s, ok := d.Spaces[k]
		if !ok {
			return fmt.Errorf("dict key %q has no sub space", k)
		}
		switch sub := s.(type) {
		case *Box:
			if err := sub.Validate(); err != nil {
				return fmt.Errorf("dict key %q: %w", k, err)
			}
		case *Dict:
			if err := sub.Validate(); err != nil {
				return fmt.Errorf("dict key %q: %w", k, err)
			}
		default:
			return fmt.Errorf("dict key %q holds unsupported space %T", k, s)
		}
	}
	return nil
}
