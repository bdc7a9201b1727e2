package gateway

import "fmt"

// ClientError is returned when the provider rejects a request with a
// 4xx status. It marks failures that are the caller's fault and must
// not be retried blindly.
type ClientError struct {
	StatusCode int
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("payment provider rejected request: status %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether err is a provider-side rejection.
func IsClientError(err error) bool {
	_, ok := err.(*ClientError)
	return ok
}
