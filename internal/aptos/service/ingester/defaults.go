package ingester

import "time"

const (
	defaultWorkerCount = 4
	defaultRangeSize   = 500

	sleepDuration     = 5 * time.Second
	longSleepDuration = 30 * time.Second

	mirrorFlushSize     = 10_000
	mirrorFlushInterval = 5 * time.Second
	mirrorFlushRPS      = 10
)
