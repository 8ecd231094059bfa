// Package lifecycle holds the bounds applied to component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step of a backing service client.
const DefaultTimeout = 10 * time.Second
