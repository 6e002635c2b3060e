package async

import "errors"

// ErrAwaitTimeout is returned by AwaitWithTimeout when the future does not
// settle within the given duration.
var ErrAwaitTimeout = errors.New("async: timed out awaiting future completion")
