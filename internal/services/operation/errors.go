package operation

import "errors"

// ErrUnsupportedOperation means the operation-type id has no registered
// strategy variant. This is a configuration or data error, not a
// user-retryable failure.
var ErrUnsupportedOperation = errors.New("unsupported operation type")
