package gitwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giterrors "github.com/kalidis/gitwrap/errors"
	"github.com/kalidis/gitwrap/testutil"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		stdout   string
		stderr   string
		want     string
		wantCode giterrors.ErrorCode
	}{
		{"value", 0, "Jane Doe\n", "", "Jane Doe", ""},
		{"unknown key", 1, "", "", "", giterrors.CodeInvalidInput},
		{"broken config file", 3, "", "fatal: bad config line 4", "", giterrors.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &testutil.ScriptedExecutor{}
			s.ScriptExit(tt.code, tt.stdout, tt.stderr)
			repo, _ := scriptedRepo(s)

			value, err := repo.Config("user.name")
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, giterrors.IsCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
			assert.Equal(t, []string{"git", "config", "user.name"}, s.LastCall(t).Args)
		})
	}
}

func TestConfig_UndocumentedExitPanics(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(2, "", "")
	repo, _ := scriptedRepo(s)

	assert.Panics(t, func() { _, _ = repo.Config("user.name") })
}

func TestConfigFileSet(t *testing.T) {
	s := &testutil.ScriptedExecutor{}

	require.NoError(t, ConfigFileSet("/tmp/gitconfig", "user.name", "Jane Doe", WithExecutor(s)))
	assert.Equal(t, []string{"git", "config", "--file", "/tmp/gitconfig", "user.name", "Jane Doe"}, s.LastCall(t).Args)
}

func TestConfigFileSet_Failures(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantCode giterrors.ErrorCode
	}{
		{"invalid key", 1, giterrors.CodeInvalidInput},
		{"broken config file", 3, giterrors.CodeInvalidConfig},
		{"write failure", 4, giterrors.CodeWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &testutil.ScriptedExecutor{}
			s.ScriptExit(tt.code, "", "error")

			err := ConfigFileSet("/tmp/gitconfig", "user.name", "Jane Doe", WithExecutor(s))
			require.Error(t, err)
			assert.True(t, giterrors.IsCode(err, tt.wantCode))
		})
	}
}

func TestConfigFileSet_UndocumentedExitPanics(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.ScriptExit(2, "", "")

	assert.Panics(t, func() {
		_ = ConfigFileSet("/tmp/gitconfig", "user.name", "Jane Doe", WithExecutor(s))
	})
}

func TestConfigFileSet_SpawnFailurePanics(t *testing.T) {
	s := &testutil.ScriptedExecutor{}
	s.Script(nil, assert.AnError)

	assert.Panics(t, func() {
		_ = ConfigFileSet("/tmp/gitconfig", "user.name", "Jane Doe", WithExecutor(s))
	})
}
