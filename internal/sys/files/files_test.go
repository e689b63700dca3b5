package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConf struct {
	Name  string `yaml:"name"`
	Limit int    `yaml:"limit"`
}

func TestExists(t *testing.T) {
	t.Parallel()
	d := t.TempDir()
	assert.True(t, Exists(d))
	assert.False(t, Exists(filepath.Join(d, "nope")))
}

func TestMkdirAll(t *testing.T) {
	t.Parallel()
	d := t.TempDir()
	a := filepath.Join(d, "a", "b")
	c := filepath.Join(d, "c")
	require.NoError(t, MkdirAll(a, c, a))
	assert.DirExists(t, a)
	assert.DirExists(t, c)
}

func TestYamlWriteRead(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "nested", "config.yml")
	want := &testConf{Name: "dejavu", Limit: 3}

	require.NoError(t, YamlWrite(p, want, false))
	assert.FileExists(t, p)

	got := &testConf{}
	require.NoError(t, YamlRead(p, got))
	assert.Equal(t, want, got)

	t.Run("existing file needs force", func(t *testing.T) {
		t.Parallel()
		err := YamlWrite(p, want, false)
		assert.ErrorIs(t, err, ErrFileExists)
	})
}

func TestYamlWriteForce(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte("name: old\n"), FilePerm))

	require.NoError(t, YamlWrite(p, &testConf{Name: "new"}, true))
	got := &testConf{}
	require.NoError(t, YamlRead(p, got))
	assert.Equal(t, "new", got.Name)
}

func TestYamlReadErrors(t *testing.T) {
	t.Parallel()
	d := t.TempDir()
	err := YamlRead(filepath.Join(d, "missing.yml"), &testConf{})
	assert.ErrorIs(t, err, ErrFileNotFound)

	bad := filepath.Join(d, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unclosed"), FilePerm))
	assert.Error(t, YamlRead(bad, &testConf{}))

	assert.ErrorIs(t, YamlWrite("", &testConf{}, false), ErrPathEmpty)
}
