package processor

import "time"

// DefaultDelay is the pause between successful batch submissions.
const DefaultDelay = 3 * time.Second

// Pacer inserts a pause between successive provider calls.
type Pacer interface {
	Pause()
}

// FixedDelay pauses for a constant duration.
type FixedDelay time.Duration

// Pause sleeps for the configured duration.
func (d FixedDelay) Pause() {
	time.Sleep(time.Duration(d))
}
