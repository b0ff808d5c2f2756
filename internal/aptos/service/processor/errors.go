package processor

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
)

// Stage is a step of range processing.
type Stage string

const (
	StageValidating Stage = "validating"
	StageDecoding   Stage = "decoding"
	StageReducing   Stage = "reducing"
	StagePersisting Stage = "persisting"
	StageDone       Stage = "done"
)

// ProcessingError reports the range and the stage a Process call failed in.
type ProcessingError struct {
	Processor string
	Range     model.VersionRange
	Stage     Stage
	Err       error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: range %s failed while %s: %v", e.Processor, e.Range, e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
