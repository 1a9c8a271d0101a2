package domain

import (
	"errors"
	"fmt"
)

// ErrNoUnits is returned when the input container holds no code units.
var ErrNoUnits = errors.New("no units found in input")

// TransformError reports a transformer failure. It aborts the whole run.
type TransformError struct {
	Transformer string
	Err         error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transformer %s failed: %v", e.Transformer, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
