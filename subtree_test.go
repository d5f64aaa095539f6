package gitwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giterrors "github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/testutil"
)

// scriptClean primes the two invocations behind IsClean with success.
func scriptClean(s *testutil.ScriptedExecutor) *testutil.ScriptedExecutor {
	s.ScriptExit(0, "", "")
	s.ScriptExit(0, "abc\n", "")
	return s
}

func TestSubtreeAdd(t *testing.T) {
	s := scriptClean(&testutil.ScriptedExecutor{})
	repo, _ := scriptedRepo(s)

	err := repo.SubtreeAdd("vendor/lib", "https://example.com/lib.git", "v1.0.0", "Import lib v1.0.0")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"git", "subtree", "add", "-q", "-P", "vendor/lib",
			"https://example.com/lib.git", "v1.0.0", "-m", "Import lib v1.0.0"},
		s.LastCall(t).Args)
}

func TestSubtreeAdd_Bare(t *testing.T) {
	repo := scriptedBareRepo(&testutil.ScriptedExecutor{})

	err := repo.SubtreeAdd("vendor/lib", "https://example.com/lib.git", "v1.0.0", "Import")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodePreconditionFailed))
}

func TestSubtreeAdd_DirtyWorkTree(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(1, "", "") // unstaged changes
	repo, _ := scriptedRepo(s)

	err := repo.SubtreeAdd("vendor/lib", "https://example.com/lib.git", "v1.0.0", "Import")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeWorkTreeDirty))
}

func TestSubtreePull(t *testing.T) {
	s := scriptClean(&testutil.ScriptedExecutor{})
	repo, _ := scriptedRepo(s)

	err := repo.SubtreePull("vendor/lib", "origin", "main", "Update lib")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"git", "subtree", "pull", "-q", "-P", "vendor/lib", "origin", "main", "-m", "Update lib"},
		s.LastCall(t).Args)
}

func TestSubtreePush_AllowsDirtyWorkTree(t *testing.T) {
	// Pushing never rewrites the local tree, so no clean check runs: the
	// only invocation is the subtree command itself.
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	err := repo.SubtreePush("vendor/lib", "origin", "split-branch")
	require.NoError(t, err)
	require.Len(t, s.Calls, 1)
	assert.Equal(t,
		[]string{"git", "subtree", "push", "-q", "-P", "vendor/lib", "origin", "split-branch"},
		s.LastCall(t).Args)
}

func TestSubtreeSplit(t *testing.T) {
	s := scriptClean(&testutil.ScriptedExecutor{})
	repo, _ := scriptedRepo(s)

	err := repo.SubtreeSplit("vendor/lib")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"git", "subtree", "split", "-P", "vendor/lib", "--rejoin", "HEAD"},
		s.LastCall(t).Args)
}

func TestSubtreeSplit_CommandFailure(t *testing.T) {
	s := scriptClean(&testutil.ScriptedExecutor{})
	s.ScriptExit(1, "", "fatal: bad prefix")
	repo, _ := scriptedRepo(s)

	err := repo.SubtreeSplit("no/such/prefix")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeExecutionFailed))
}
