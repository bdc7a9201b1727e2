package wallet

import "time"

// PercentRate is the fixed percentage applied to every requested
// amount before it is forwarded to the payment provider. It is not
// request-configurable.
const PercentRate int64 = 10

// Default configuration values
const (
	DefaultTimeout = 30 * time.Second
)
