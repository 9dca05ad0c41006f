package ingester

import "time"

const (
	defaultWorkerCount = 8
	defaultWindow      = 100

	initialBackoff    = 1 * time.Second
	maxBackoff        = 1 * time.Minute
	longSleepDuration = 1 * time.Minute
	idleSleepDuration = 5 * time.Second
)
