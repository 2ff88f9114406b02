package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Number of features in an encoded trip vector. The encoder, scaler and
// forest all assume this width; changing it invalidates any persisted model.
const NumFeatures = 8

// Scaler holds a zero-mean unit-variance transform fit once on training
// data and reused unchanged at inference.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-column population mean and standard deviation.
// Columns with zero spread keep a unit divisor so transforms stay finite.
func FitScaler(features [][]float64) (*Scaler, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("fit scaler: empty feature matrix")
	}

	cols := len(features[0])
	s := &Scaler{
		Mean: make([]float64, cols),
		Std:  make([]float64, cols),
	}

	column := make([]float64, len(features))
	for c := 0; c < cols; c++ {
		for r, row := range features {
			if len(row) != cols {
				return nil, fmt.Errorf("fit scaler: row %d has %d columns, want %d", r, len(row), cols)
			}
			column[r] = row[c]
		}

		s.Mean[c] = stat.Mean(column, nil)
		s.Std[c] = stat.PopStdDev(column, nil)
		if s.Std[c] == 0 {
			s.Std[c] = 1
		}
	}

	return s, nil
}

// Transform standardizes a single feature vector.
func (s *Scaler) Transform(features []float64) []float64 {
	out := make([]float64, len(features))
	for i, v := range features {
		out[i] = (v - s.Mean[i]) / s.Std[i]
	}
	return out
}

// TransformMatrix standardizes every row of a feature matrix.
func (s *Scaler) TransformMatrix(features [][]float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = s.Transform(row)
	}
	return out
}
