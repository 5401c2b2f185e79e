// Package meter implements the 0-100% production accumulators behind the
// plant and harvest buttons. A meter fills continuously from elapsed time
// and discretely from taps; crossing 100% completes exactly once and the
// overflow remainder carries into the next cycle.
package meter

import "time"

const (
	// TapIncrement is the percentage added by one button tap.
	TapIncrement = 15.0

	// MaxStepElapsed caps the elapsed time credited per advance step so a
	// suspended process cannot burst through several completions on resume.
	MaxStepElapsed = 50 * time.Millisecond

	fullPercent = 100.0
)

// Meter is a single percentage accumulator. Not safe for concurrent use;
// the session serializes access.
type Meter struct {
	percent float64
}

// New returns an empty meter.
func New() *Meter {
	return &Meter{}
}

// Percent returns the current fill, a smooth value in [0, 100] suitable
// for animation interpolation.
func (m *Meter) Percent() float64 {
	return m.percent
}

// Advance credits elapsed wall-clock time at the given rate and returns
// the number of completions (0 or 1 in practice; the elapsed clamp keeps
// per-step increments far below a full cycle). The completion check and
// the reset happen in the same step, so a completion can never be observed
// twice.
func (m *Meter) Advance(elapsed time.Duration, ratePerMinute float64) int {
	if elapsed <= 0 || ratePerMinute <= 0 {
		return 0
	}
	if elapsed > MaxStepElapsed {
		elapsed = MaxStepElapsed
	}
	percentPerMs := ratePerMinute * fullPercent / (60 * 1000)
	m.percent += percentPerMs * float64(elapsed.Milliseconds())
	return m.drainCompletions()
}

// Tap adds the tap increment and returns the number of completions. A tap
// at 92% completes once and leaves the meter at 7%, not 0%.
func (m *Meter) Tap() int {
	m.percent += TapIncrement
	return m.drainCompletions()
}

// Boost adds bonus percentage without ever completing; the fill is capped
// at 100% and the next Advance or Tap resolves the completion. Used by the
// harvest_boost merge reward.
func (m *Meter) Boost(points float64) {
	if points <= 0 {
		return
	}
	m.percent += points
	if m.percent > fullPercent {
		m.percent = fullPercent
	}
}

func (m *Meter) drainCompletions() int {
	completions := 0
	for m.percent >= fullPercent {
		m.percent -= fullPercent
		completions++
	}
	return completions
}
