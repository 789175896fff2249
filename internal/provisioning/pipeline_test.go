package provisioning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepFuncImpl creates a Step from a function for testing.
type stepFuncImpl struct {
	name   string
	policy Policy
	fn     func(*Context) error
}

func stepFunc(name string, policy Policy, fn func(*Context) error) Step {
	return &stepFuncImpl{name: name, policy: policy, fn: fn}
}

func (s *stepFuncImpl) Name() string           { return s.name }
func (s *stepFuncImpl) Policy() Policy         { return s.policy }
func (s *stepFuncImpl) Run(ctx *Context) error { return s.fn(ctx) }

func testContext() (*Context, *MockObserver) {
	observer := NewMockObserver()
	return &Context{
		Observer: observer,
		State:    NewState(),
	}, observer
}

func TestRunSteps_Success(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx, _ := testContext()

	steps := []Step{
		stepFunc("foundation", Mandatory, func(_ *Context) error { executed = append(executed, "foundation"); return nil }),
		stepFunc("storage", Mandatory, func(_ *Context) error { executed = append(executed, "storage"); return nil }),
		stepFunc("database", Mandatory, func(_ *Context) error { executed = append(executed, "database"); return nil }),
	}

	err := RunSteps(ctx, steps)

	require.NoError(t, err)
	assert.Equal(t, []string{"foundation", "storage", "database"}, executed)
	assert.Empty(t, ctx.State.Failures)
}

func TestRunSteps_StopsOnMandatoryError(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx, _ := testContext()

	steps := []Step{
		stepFunc("foundation", Mandatory, func(_ *Context) error { executed = append(executed, "foundation"); return nil }),
		stepFunc("storage", Mandatory, func(_ *Context) error { return fmt.Errorf("name already taken") }),
		stepFunc("database", Mandatory, func(_ *Context) error { executed = append(executed, "database"); return nil }),
	}

	err := RunSteps(ctx, steps)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage step failed")
	assert.Contains(t, err.Error(), "name already taken")
	// database must NOT have executed
	assert.Equal(t, []string{"foundation"}, executed)
}

func TestRunSteps_ContinuesPastBestEffort(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)
	ctx, _ := testContext()

	steps := []Step{
		stepFunc("secret django-secret-key", BestEffort, func(_ *Context) error { return fmt.Errorf("vault unreachable") }),
		stepFunc("secret database-password", BestEffort, func(_ *Context) error { executed = append(executed, "database-password"); return nil }),
		stepFunc("telemetry", Mandatory, func(_ *Context) error { executed = append(executed, "telemetry"); return nil }),
	}

	err := RunSteps(ctx, steps)

	require.NoError(t, err)
	assert.Equal(t, []string{"database-password", "telemetry"}, executed)
	require.Len(t, ctx.State.Failures, 1)
	assert.Equal(t, "secret django-secret-key", ctx.State.Failures[0].Step)
	assert.ErrorContains(t, ctx.State.Failures[0].Err, "vault unreachable")
}

func TestRunSteps_Empty(t *testing.T) {
	t.Parallel()
	ctx, _ := testContext()

	err := RunSteps(ctx, nil)

	require.NoError(t, err)
}

func TestRunSteps_LogsStepEvents(t *testing.T) {
	t.Parallel()
	ctx, observer := testContext()

	err := RunSteps(ctx, []Step{
		stepFunc("test", Mandatory, func(_ *Context) error { return nil }),
	})

	require.NoError(t, err)

	var hasStart, hasComplete bool
	for _, event := range observer.events {
		if event.Type == EventStepStarted {
			hasStart = true
		}
		if event.Type == EventStepCompleted {
			hasComplete = true
		}
	}
	assert.True(t, hasStart, "should log step start event")
	assert.True(t, hasComplete, "should log step complete event")
}

func TestRunSteps_LogsFailure(t *testing.T) {
	t.Parallel()
	ctx, observer := testContext()

	_ = RunSteps(ctx, []Step{
		stepFunc("failing", Mandatory, func(_ *Context) error { return fmt.Errorf("boom") }),
	})

	var hasFailed bool
	for _, event := range observer.events {
		if event.Type == EventStepFailed {
			hasFailed = true
		}
	}
	assert.True(t, hasFailed, "should log step failed event")
}

func TestRunSteps_LogsBestEffortWarning(t *testing.T) {
	t.Parallel()
	ctx, observer := testContext()

	err := RunSteps(ctx, []Step{
		stepFunc("secret storage-account-key", BestEffort, func(_ *Context) error { return fmt.Errorf("forbidden") }),
	})

	require.NoError(t, err)

	var hasWarning, hasFailed bool
	for _, event := range observer.events {
		if event.Type == EventStepWarning {
			hasWarning = true
		}
		if event.Type == EventStepFailed {
			hasFailed = true
		}
	}
	assert.True(t, hasWarning, "should log step warning event")
	assert.False(t, hasFailed, "best-effort failure must not log step failed")
}

func TestPolicy_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "mandatory", Mandatory.String())
	assert.Equal(t, "best-effort", BestEffort.String())
}
