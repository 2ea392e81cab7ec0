package core

import "time"

// FixedStep helps run growth updates at a steady steps-per-second rate,
// decoupled from the display frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = 60
	}
	fs := &FixedStep{}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
