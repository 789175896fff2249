package provisioning

import (
	"fmt"
	"time"
)

// RunSteps executes all provisioning steps sequentially. The first failing
// Mandatory step aborts the run; nothing already created is rolled back.
// BestEffort failures are recorded on the state and the run continues.
func RunSteps(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()

		ctx.Observer.Progress(step.Name(), i+1, len(steps))
		LogStepStart(ctx.Observer, step.Name())

		if err := step.Run(ctx); err != nil {
			if step.Policy() == BestEffort {
				LogStepWarning(ctx.Observer, step.Name(), err)
				ctx.State.Failures = append(ctx.State.Failures, StepFailure{Step: step.Name(), Err: err})
				continue
			}
			LogStepFailed(ctx.Observer, step.Name(), err)
			return fmt.Errorf("%s step failed: %w", step.Name(), err)
		}

		LogStepComplete(ctx.Observer, step.Name(), time.Since(stepStart))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
