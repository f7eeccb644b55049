package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("BRANCH_NAME", "develop")
	t.Setenv("GITHUB_REPOSITORY", "owner/repo")
	t.Setenv("PORT", "9000")
	t.Setenv("DISABLE_METRICS", "true")

	cfg, err := NewFromEnv()
	require.NoError(t, err)
	require.Equal(t, "develop", cfg.BranchName)
	require.Equal(t, "dev", cfg.Stage)
	require.Equal(t, ":9000", cfg.GetServerAddr())
	require.True(t, cfg.DisableMetrics)
	require.False(t, cfg.DisableRequestCache)

	repo, err := cfg.GetRepository()
	require.NoError(t, err)
	require.Equal(t, "owner/repo", repo)
}

func TestNewFromEnvWithoutBranch(t *testing.T) {
	t.Setenv("BRANCH_NAME", "")
	t.Setenv("GITHUB_REPOSITORY", "")

	cfg, err := NewFromEnv()
	require.NoError(t, err)
	require.Empty(t, cfg.BranchName)

	_, err = cfg.GetRepository()
	require.ErrorIs(t, err, ErrRepositoryMissing)
}

func TestCreateGitHubClient(t *testing.T) {
	require.NotNil(t, (&Config{}).CreateGitHubClient())
	require.NotNil(t, (&Config{GitHubToken: "token"}).CreateGitHubClient())
}

func TestCommitTypesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ct := range CommitTypes {
		require.False(t, seen[ct.Type], "duplicate commit type %s", ct.Type)
		seen[ct.Type] = true
		require.NotEmpty(t, ct.Section)
	}
	require.Len(t, seen, 7)
	for _, keyword := range []string{"feat", "feature", "fix", "docs", "refactor", "test", "ci"} {
		require.True(t, seen[keyword], keyword)
	}
}

func TestBranches(t *testing.T) {
	require.True(t, Branches.QualifiesForFullPublish("release"))
	require.False(t, Branches.QualifiesForFullPublish("develop"))
	require.Equal(t, "rc", Branches.Find("develop").Prerelease)
}

func TestBranchNamesUnique(t *testing.T) {
	require.NoError(t, Branches.Validate())
	names := make(map[string]struct{}, len(Branches))
	for _, b := range Branches {
		require.NotEmpty(t, b.Name)
		require.NotContains(t, names, b.Name)
		names[b.Name] = struct{}{}
	}
}

func TestPluginTablesAreFresh(t *testing.T) {
	base := BasePlugins()
	base[0].ID = "changed"
	require.Equal(t, PluginCommitAnalyzer, BasePlugins()[0].ID)
}
