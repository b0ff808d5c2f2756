package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedTag is returned when a parser is asked to handle a tag outside the allow-list.
// Callers classify first, so seeing it means a bug.
var ErrUnsupportedTag = errors.New("unsupported type tag")

// DecodeError reports a payload that failed to parse for a supported tag.
type DecodeError struct {
	Version int64
	Tag     string
	Payload json.RawMessage
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at version %d: %v (payload %s)", e.Tag, e.Version, e.Err, string(e.Payload))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(version int64, tag string, payload json.RawMessage, err error) *DecodeError {
	return &DecodeError{Version: version, Tag: tag, Payload: payload, Err: err}
}
