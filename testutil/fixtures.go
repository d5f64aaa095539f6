package testutil

import (
	"os/exec"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

// InitRepo creates a non-bare repository on disk under a temporary
// directory and returns its working-tree path. The repository is built with
// go-git, so no git binary is required.
func InitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

// InitBareRepo creates a bare repository on disk under a temporary
// directory and returns its path.
func InitBareRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)
	return dir
}

// RequireGit skips the test when no git binary is available on PATH.
// Classification tests run against scripted executors; only end-to-end
// tests need the real thing.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}
