// Package lifecycle defines timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (database ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
