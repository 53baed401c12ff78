package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SLEVAL_TEST_KEY=from-file\n"), 0o644))

	t.Setenv("ENV_PATH", path)
	t.Setenv("SLEVAL_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("SLEVAL_TEST_KEY"))

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "from-file", os.Getenv("SLEVAL_TEST_KEY"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("prod", ""))
}
