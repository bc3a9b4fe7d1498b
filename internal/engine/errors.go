package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageConfig   Stage = "config"
	StageLoad     Stage = "load"
	StageClean    Stage = "clean"
	StagePrepare  Stage = "prepare"
	StageGenerate Stage = "generate"
)

// StageError tags an error with the stage it aborted.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// StageOf reports the stage recorded anywhere in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
