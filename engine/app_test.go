package engine_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingApp struct {
	updates   int
	closeAt   int
	setupErr  error
	teardowns int
}

func (a *recordingApp) Setup() error { return a.setupErr }
func (a *recordingApp) Update(dt float32) error {
	a.updates++
	return nil
}
func (a *recordingApp) Teardown() { a.teardowns++ }

func TestEngineRunDrivesUpdateUntilClose(t *testing.T) {
	app := &recordingApp{closeAt: 3}
	calls := 0
	poll := func() bool {
		calls++
		return calls > app.closeAt
	}
	e := engine.NewEngine(poll, engine.NewNopLogger())
	err := e.Run(app)
	require.NoError(t, err)
	assert.Equal(t, 3, app.updates)
	assert.Equal(t, 1, app.teardowns)
}

func TestEngineRunPropagatesSetupError(t *testing.T) {
	app := &recordingApp{setupErr: assertErr("boom")}
	e := engine.NewEngine(func() bool { return true }, engine.NewNopLogger())
	err := e.Run(app)
	require.Error(t, err)
	assert.Equal(t, 0, app.teardowns)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
