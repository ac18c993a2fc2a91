// Package timeouts defines shared timeout constants used by the sprite tools.
package timeouts

import "time"

// PerceptualDiff caps a single invocation of the external image comparison
// executable. A hung comparison would otherwise block the whole run.
const PerceptualDiff = 30 * time.Second

// TelemetryShutdown limits how long a tool waits for pending spans to flush.
const TelemetryShutdown = 5 * time.Second
