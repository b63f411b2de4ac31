package dataset

import "errors"

var (
	// ErrInvalidRecord indicates a fault record failed validation.
	ErrInvalidRecord = errors.New("invalid fault record")

	ErrEmptyBrand     = errors.New("brand cannot be empty")
	ErrEmptyFaultCode = errors.New("fault code cannot be empty")
	ErrEmptyModel     = errors.New("model cannot be empty")

	// ErrEmptyDataset indicates a source contained no fault records.
	ErrEmptyDataset = errors.New("dataset contains no fault records")
)
