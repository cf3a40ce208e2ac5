package engine

import "time"

// App is the application the frame pipeline drives. Setup runs once before
// the loop starts; Update runs once per frame with the measured delta time;
// Teardown runs once after the loop exits (close request or fatal error).
// This is the Go shape of the reference's setup/loop/terminate function
// pointers (spec §9 Design Notes), grounded on the teacher's App/Module/Run
// pattern (app.go) but collapsed from a reflection-driven system scheduler
// to three direct methods, since this spec has no ECS to schedule against.
type App interface {
	Setup() error
	Update(dt float32) error
	Teardown()
}

// PollFunc reports whether the host window wants to close (e.g.
// appcontext.Context.Update). Kept as a function value rather than an
// interface so engine has no import on appcontext (which itself only needs
// engine's Logger, structurally).
type PollFunc func() (shouldClose bool)

// Engine drives App through the per-frame pipeline spec §5 requires: poll
// events, run the app's per-frame update (which samples input, steps
// physics, updates audio, rebuilds scene matrices and renders, in whatever
// order the concrete App composes them), in strict single-threaded,
// cooperative order — no suspension points inside a frame.
type Engine struct {
	Poll PollFunc
	Log  Logger
}

// NewEngine constructs an Engine. If log is nil, a no-op logger is used.
func NewEngine(poll PollFunc, log Logger) *Engine {
	if log == nil {
		log = NewNopLogger()
	}
	return &Engine{Poll: poll, Log: log}
}

// Run executes app.Setup, then loops app.Update(dt) until Poll reports a
// close request or Update returns a fatal error, then calls app.Teardown.
// Setup-phase errors are fatal and returned to the caller unchanged, per
// spec §7's propagation policy; Update errors are likewise treated as fatal
// (an App that wants to survive a per-frame GPU hiccup must swallow it
// itself and only return from Update on an unrecoverable condition).
func (e *Engine) Run(app App) error {
	if err := app.Setup(); err != nil {
		e.Log.Errorf("setup failed: %v", err)
		return err
	}

	last := time.Now()
	for {
		if e.Poll != nil && e.Poll() {
			e.Log.Infof("close requested")
			break
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := app.Update(dt); err != nil {
			e.Log.Errorf("update failed: %v", err)
			app.Teardown()
			return err
		}
	}

	app.Teardown()
	return nil
}
