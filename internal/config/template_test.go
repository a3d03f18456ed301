package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileTemplateLoadsBack(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")

	require.NoError(t, WriteFile(path, Template(), false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pass:<entry>")
	assert.Contains(t, string(data), "[neynar]")

	cfg, err := Load(NewViper(), Options{ConfigFile: path, DotEnvFile: filepath.Join(dir, "none.env")})
	require.NoError(t, err)
	assert.Equal(t, Template(), cfg)
}

func TestWriteFileRefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("chain = \"mainnet\"\n"), 0o600))

	err := WriteFile(path, Template(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chain = \"mainnet\"\n", string(data))

	require.NoError(t, WriteFile(path, Template(), true))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
