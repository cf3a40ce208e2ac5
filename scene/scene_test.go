package scene_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/model"
	"github.com/omerfuyar/shuildgo/scene"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load's success path spawns real renderer.Scene batches/components and so
// needs a live GPU device; these tests cover the parse-time error paths,
// which all return before any renderer call is made.

func TestLoadUnknownModelIsError(t *testing.T) {
	_, err := scene.Load(nil, map[string]*model.Model{}, "newscn demo\nusemdl ghost\n")
	require.Error(t, err)
	assert.True(t, shuilderr.Is(err, shuilderr.UnknownModel))
}

func TestLoadCommitBeforeUsemdlIsError(t *testing.T) {
	_, err := scene.Load(nil, map[string]*model.Model{}, "newscn demo\np 1 2 3\ns 1 1 1\n")
	require.Error(t, err)
}

func TestLoadMalformedVectorIsError(t *testing.T) {
	_, err := scene.Load(nil, map[string]*model.Model{}, "newscn demo\np 1 2\n")
	require.Error(t, err)
}

func TestLoadUnknownDirectiveIsIgnored(t *testing.T) {
	_, err := scene.Load(nil, map[string]*model.Model{}, "newscn demo\nfoo bar baz\n")
	require.NoError(t, err)
}
