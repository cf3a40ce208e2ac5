package resource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omerfuyar/shuildgo/resource"
	"github.com/stretchr/testify/require"
)

func TestLoadTextConcatenatesLines(t *testing.T) {
	dir := t.TempDir()
	content := "first line\nsecond line\nthird\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte(content), 0o644))

	root := resource.NewRootAt(dir)
	text, err := resource.LoadText(root, "file.txt")
	require.NoError(t, err)
	require.Equal(t, 3, text.LineCount)
	require.Equal(t, content, text.Data)
}

func TestLoadTextMissingFile(t *testing.T) {
	root := resource.NewRootAt(t.TempDir())
	_, err := resource.LoadText(root, "nope.txt")
	require.Error(t, err)
}
