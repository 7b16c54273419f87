package util

import (
	"golang.org/x/exp/constraints"
)

// Matrix makes a 1D slice appear as a 2D raster. Rows are contiguous so Data
// can be handed to image encoders with a stride of Width.
type Matrix[T constraints.Integer] struct {
	Width  uint32
	Height uint32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Integer](height uint32, width uint32) *Matrix[T] {
	matrix := make([]T, uint64(width)*uint64(height))
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// NewEmpty2DMatrix creates a matrix with the given dimensions but no backing
// rows. Rows are added with EnsureRows as they are filled.
func NewEmpty2DMatrix[T constraints.Integer](height uint32, width uint32) *Matrix[T] {
	return &Matrix[T]{Width: width, Height: height}
}

// EnsureRows grows Data with zeroed rows until rows 0..n-1 are addressable.
func (s *Matrix[T]) EnsureRows(n uint32) {
	need := uint64(n) * uint64(s.Width)
	if have := uint64(len(s.Data)); have < need {
		s.Data = append(s.Data, make([]T, need-have)...)
	}
}

// Note y is first param
func (s *Matrix[T]) Get(y uint32, x uint32) T {
	return s.Data[s.index(y, x)]
}

func (s *Matrix[T]) Set(y uint32, x uint32, value T) {
	s.Data[s.index(y, x)] = value
}

func (s *Matrix[T]) IncrementBy(y uint32, x uint32, value T) {
	s.Data[s.index(y, x)] += value
}

func (s *Matrix[T]) GetRow(y uint32) []T {
	start := uint64(y) * uint64(s.Width)
	return s.Data[start : start+uint64(s.Width)]
}

func (s *Matrix[T]) index(y uint32, x uint32) uint64 {
	return uint64(y)*uint64(s.Width) + uint64(x)
}
