package crucible

import (
	"errors"
	"fmt"

	"github.com/ArthurMatthys/aoc"
)

// Sentinel errors returned by this package. Parse failures arrive wrapped in
// a *ParseError and run-limit failures in a *ConfigError; use errors.Is to
// test for the cause.
var (
	// ErrEmptyGrid indicates the input held no non-blank rows.
	ErrEmptyGrid = errors.New("crucible: grid must have at least one row and one column")

	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("crucible: all rows must have the same length")

	// ErrNotDigit indicates a cell that is not an ASCII digit. It is the same
	// value as aoc.ErrNotDigit.
	ErrNotDigit = aoc.ErrNotDigit

	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("crucible: cell cost must be non-negative")

	// ErrNilGrid indicates a nil *Grid was passed to the solver.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrNegativeRun indicates a negative MinRun or MaxRun.
	ErrNegativeRun = errors.New("crucible: run limits must be non-negative")

	// ErrRunOrder indicates MaxRun < MinRun.
	ErrRunOrder = errors.New("crucible: max run must not be below min run")

	// ErrUnreachable indicates that no route satisfies the run limits.
	ErrUnreachable = errors.New("crucible: target unreachable under run limits")

	// ErrUnknownPreset indicates a preset name with no configuration.
	ErrUnknownPreset = errors.New("crucible: unknown preset")
)

// ParseError reports malformed grid input. Line and Col are 1-based and zero
// when the failure is not tied to a position.
type ParseError struct {
	Line, Col int
	Err       error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("parse grid: %v", e.Err)
	case e.Col == 0:
		return fmt.Sprintf("parse grid: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse grid: line %d col %d: %v", e.Line, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports an invalid pair of run limits.
type ConfigError struct {
	Config Config
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("run limits min=%d max=%d: %v", e.Config.MinRun, e.Config.MaxRun, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
