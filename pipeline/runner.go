package pipeline

import (
	"time"

	"github.com/kirillseva/syberiaStages/errors"
	"github.com/kirillseva/syberiaStages/pipelog"
)

// RunnerOpts configures a Runner.
type RunnerOpts struct {
	Logger *pipelog.Logger
	// ContinueOnError makes the runner execute every remaining action after a
	// failure and report the collected errors at the end. Otherwise the first
	// failure halts the run.
	ContinueOnError bool
}

// DefaultRunnerOpts collects all stage errors and logs through the basic logger.
var DefaultRunnerOpts = RunnerOpts{
	Logger:          pipelog.Basic,
	ContinueOnError: true,
}

// Runner executes a sequence of named actions against a shared context.
// Execution is synchronous and single-threaded: each action runs to
// completion before the next begins, so no locking is needed within a run.
// No retries or timeouts are applied; those belong to the actions themselves.
type Runner struct {
	opts RunnerOpts
}

// NewRunner returns a runner with the given options.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = pipelog.Basic
	}
	return &Runner{opts: opts}
}

// Run executes the actions in order. With ContinueOnError set, the returned
// error is an errors.Errors collecting one entry per failed action.
func (r *Runner) Run(ctx *Context, actions []NamedAction) error {
	var errs errors.Errors
	durations := r.opts.Logger.Durations

	for _, action := range actions {
		if action.Run == nil {
			return errors.Errorf("action %q has no Run function", action.Name)
		}

		r.opts.Logger.Printf("running %s", action.Name)
		start := time.Now()
		err := action.Run(ctx)
		durations.Record(action.Name, time.Since(start))

		if err != nil {
			wrapped := errors.Wrapf(err, "stage %s", action.Name)
			if !r.opts.ContinueOnError {
				return wrapped
			}
			r.opts.Logger.Printf("stage %s failed: %v", action.Name, err)
			errs = errors.Append(errs, wrapped)
		}
	}

	durations.Flush(r.opts.Logger)

	if errs == nil {
		return nil
	}
	return errs
}
