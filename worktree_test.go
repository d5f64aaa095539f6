package gitwrap

import (
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giterrors "github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/testutil"
)

func TestStage(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	require.NoError(t, repo.Stage("README.md"))
	assert.Equal(t, []string{"git", "add", "--", "README.md"}, s.LastCall(t).Args)
}

func TestStage_AbsolutePathRebased(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	require.NoError(t, repo.Stage("/srv/project/docs/guide.md"))
	assert.Equal(t, []string{"git", "add", "--", "docs/guide.md"}, s.LastCall(t).Args)
}

func TestStage_PathOutsideWorkTree(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	err := repo.Stage("/etc/passwd")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeInvalidInput))
	assert.Empty(t, s.Calls, "git must not be invoked for rejected paths")
}

func TestStage_MissingFile(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(128, "", "fatal: pathspec 'nope' did not match any files")
	repo, _ := scriptedRepo(s)

	err := repo.Stage("nope")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeNotFound))
}

func TestStage_Bare(t *testing.T) {
	repo := scriptedBareRepo(&testutil.ScriptedExecutor{})

	err := repo.Stage("README.md")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodePreconditionFailed))
}

func TestStage_UndocumentedFailure(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(1, "", "error: something else")
	repo, _ := scriptedRepo(s)

	err := repo.Stage("README.md")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeExecutionFailed))
	assert.Equal(t, 1, giterrors.GetDetails(err)["exit_code"])
}

func TestResetHard(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	require.NoError(t, repo.ResetHard("HEAD~1"))
	assert.Equal(t, []string{"git", "reset", "--hard", "--quiet", "HEAD~1"}, s.LastCall(t).Args)
}

func TestSparseCheckoutAdd(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, _ := scriptedRepo(s)

	require.NoError(t, repo.SparseCheckoutAdd("docs/"))
	assert.Equal(t, []string{"git", "sparse-checkout", "add", "docs/"}, s.LastCall(t).Args)
}

func TestReadFile_WorkTree(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	repo, fs := scriptedRepo(s)
	require.NoError(t, util.WriteFile(fs, "README.md", []byte("# Project\n"), 0o644))

	data, err := repo.ReadFile("README.md")
	require.NoError(t, err)
	assert.Equal(t, "# Project\n", string(data))
	assert.Empty(t, s.Calls, "working-tree reads bypass git")
}

func TestReadFile_WorkTreeMissing(t *testing.T) {
	repo, _ := scriptedRepo(&testutil.ScriptedExecutor{})

	_, err := repo.ReadFile("absent.txt")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeNotFound))
}

func TestReadFile_Bare(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(0, "contents\n", "")
	repo := scriptedBareRepo(s)

	data, err := repo.ReadFile("README.md")
	require.NoError(t, err)
	assert.Equal(t, "contents\n", string(data))
	assert.Equal(t, []string{"git", "show", ":README.md"}, s.LastCall(t).Args)
}

func TestReadFile_BareMissing(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(128, "", "fatal: path 'absent.txt' does not exist")
	repo := scriptedBareRepo(s)

	_, err := repo.ReadFile("absent.txt")
	require.Error(t, err)
	assert.True(t, giterrors.IsCode(err, giterrors.CodeNotFound))
}
