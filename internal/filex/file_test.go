package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureSubDir(tmp, "feedbackctl")
	require.NoError(t, err)

	want := filepath.Join(tmp, "feedbackctl")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureSubDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := EnsureSubDir(tmp, "feedbackctl")
	require.NoError(t, err)

	second, err := EnsureSubDir(tmp, "feedbackctl")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureSubDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "feedbackctl"), []byte("x"), 0o600))

	_, err := EnsureSubDir(tmp, "feedbackctl")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestEnsureSubDir_DefaultsToUserConfigDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}

	got, err := EnsureSubDir("", "feedbackctl")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "feedbackctl"), got)
}
