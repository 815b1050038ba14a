// Package lifecycle holds shared timing values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (ping, flush, shutdown).
const DefaultTimeout = 10 * time.Second
