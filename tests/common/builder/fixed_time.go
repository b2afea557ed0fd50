//go:build unit || e2e

package builder

import "time"

// FixedNow is the reference instant every builder measures its defaults from.
var FixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
