// Package benchmarks provides timing estimates for provisioning steps.
package benchmarks

import "time"

// StepRecord captures when a step started and, once finished, ended.
type StepRecord struct {
	Step      string
	StartedAt time.Time
	EndedAt   *time.Time
}

// DefaultTimings are median step durations from real runs (seconds). The
// flexible server dominates; most of the rest is a single ARM round trip.
var DefaultTimings = map[string]int{
	"preflight":                  5,
	"foundation":                 15,
	"storage":                    50,
	"database":                   300,
	"vault":                      40,
	"secret django-secret-key":   3,
	"secret database-password":   3,
	"secret storage-account-key": 3,
	"telemetry":                  20,
	"webapp":                     120,
	"artifacts":                  1,
	"report":                     5,
}

// StepOrder defines the provisioning sequence for ETA calculation.
var StepOrder = []string{
	"preflight",
	"foundation",
	"storage",
	"database",
	"vault",
	"secret django-secret-key",
	"secret database-password",
	"secret storage-account-key",
	"telemetry",
	"webapp",
	"artifacts",
	"report",
}

// EstimateRemaining calculates the estimated time remaining based on the
// current step, its elapsed time, and the records of finished steps.
func EstimateRemaining(currentStep string, stepElapsed time.Duration, history []StepRecord) time.Duration {
	return EstimateRemainingWithScale(currentStep, stepElapsed, history, PerformanceScale(currentStep, stepElapsed, history))
}

// EstimateRemainingWithScale calculates ETA while applying a performance scale factor.
func EstimateRemainingWithScale(
	currentStep string,
	stepElapsed time.Duration,
	history []StepRecord,
	scale float64,
) time.Duration {
	var remaining time.Duration

	currentIdx := -1
	for i, s := range StepOrder {
		if s == currentStep {
			currentIdx = i
			break
		}
	}
	if currentIdx < 0 {
		return 0
	}

	// For the current step: max(0, expected - elapsed)
	if expected, ok := DefaultTimings[currentStep]; ok {
		expectedDur := time.Duration(expected) * time.Second
		expectedDur = time.Duration(float64(expectedDur) * scale)
		if expectedDur > stepElapsed {
			remaining += expectedDur - stepElapsed
		}
	}

	// For future steps: use DefaultTimings, skipping anything already done
	completed := make(map[string]bool)
	for _, rec := range history {
		if rec.EndedAt != nil {
			completed[rec.Step] = true
		}
	}

	for i := currentIdx + 1; i < len(StepOrder); i++ {
		step := StepOrder[i]
		if completed[step] {
			continue
		}
		if expected, ok := DefaultTimings[step]; ok {
			expectedDur := time.Duration(expected) * time.Second
			remaining += time.Duration(float64(expectedDur) * scale)
		}
	}

	return remaining
}

// PerformanceScale derives a speed multiplier from observed-vs-expected durations.
// Example: expected 3m, observed 4m30s => scale=1.5 (future ETAs are stretched by 50%).
func PerformanceScale(currentStep string, stepElapsed time.Duration, history []StepRecord) float64 {
	var expectedTotal time.Duration
	var actualTotal time.Duration

	for _, rec := range history {
		expectedSecs, ok := DefaultTimings[rec.Step]
		if !ok || rec.EndedAt == nil {
			continue
		}
		expectedTotal += time.Duration(expectedSecs) * time.Second
		actualTotal += rec.EndedAt.Sub(rec.StartedAt)
	}

	// If the current step is overrunning, fold it in immediately so the ETA
	// adapts quickly.
	if expectedSecs, ok := DefaultTimings[currentStep]; ok && stepElapsed > 0 {
		expectedCurrent := time.Duration(expectedSecs) * time.Second
		if stepElapsed > expectedCurrent {
			expectedTotal += expectedCurrent
			actualTotal += stepElapsed
		}
	}

	if expectedTotal == 0 || actualTotal == 0 {
		return 1.0
	}

	scale := float64(actualTotal) / float64(expectedTotal)
	if scale < 0.6 {
		return 0.6
	}
	if scale > 3.0 {
		return 3.0
	}
	return scale
}

// StepExpectedDuration returns the benchmark duration for a step.
func StepExpectedDuration(step string) (time.Duration, bool) {
	secs, ok := DefaultTimings[step]
	if !ok {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// TotalEstimate returns the total estimated provisioning time.
func TotalEstimate() time.Duration {
	var total time.Duration
	for _, step := range StepOrder {
		if secs, ok := DefaultTimings[step]; ok {
			total += time.Duration(secs) * time.Second
		}
	}
	return total
}
