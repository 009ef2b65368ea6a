package summary

import (
	"iter"
	"time"
)

const (
	// CounterTick is the interval between two point counter frames.
	CounterTick = 25 * time.Millisecond
	// CounterDuration is the nominal length of the counter animation.
	CounterDuration = 1500 * time.Millisecond

	counterSteps = 60
)

// CounterStep returns ceil(target / 60), the amount added on every tick.
func CounterStep(target int) int {
	if target <= 0 {
		return 0
	}
	return (target + counterSteps - 1) / counterSteps
}

// CounterTicks returns how many ticks the counter needs to reach target.
// It never exceeds 60.
func CounterTicks(target int) int {
	step := CounterStep(target)
	if step == 0 {
		return 0
	}
	return (target + step - 1) / step
}

// ValueAt returns the counter value after the given number of ticks,
// clamped to target.
func ValueAt(target, ticks int) int {
	if target <= 0 || ticks <= 0 {
		return 0
	}
	return min(ticks*CounterStep(target), target)
}

// PointCounter yields 0, step, 2*step, ... and finally exactly target.
// The sequence is strictly increasing and has at most 61 values.
func PointCounter(target int) iter.Seq[int] {
	return func(yield func(int) bool) {
		ticks := CounterTicks(target)
		for i := 0; i <= ticks; i++ {
			if !yield(ValueAt(target, i)) {
				return
			}
		}
	}
}
