package capture

import "errors"

// ErrPayloadMismatch is returned when a step result does not belong to the
// current stage.
var ErrPayloadMismatch = errors.New("step result does not belong to the current stage")
