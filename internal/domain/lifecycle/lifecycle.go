// Package lifecycle holds shared start/stop constants for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart and OnStop hooks.
const DefaultTimeout = 10 * time.Second
