package release

import (
	"testing"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/pkg/releaserc"
	"github.com/stretchr/testify/require"
)

var basePluginIDs = []string{
	config.PluginCommitAnalyzer,
	config.PluginReleaseNotesGenerator,
	config.PluginExec,
}

func TestSelectPublishMode(t *testing.T) {
	testCases := []struct {
		branch   string
		expected PublishMode
	}{
		{branch: "release", expected: PublishModeFull},
		{branch: "develop", expected: PublishModeRestricted},
		{branch: "feature/x", expected: PublishModeRestricted},
		{branch: "", expected: PublishModeRestricted},
	}

	for _, testCase := range testCases {
		require.Equal(t, testCase.expected, SelectPublishMode(testCase.branch, config.Branches), testCase.branch)
	}
}

func TestAssembleStableBranch(t *testing.T) {
	cfg, mode := Assemble("release")
	require.Equal(t, PublishModeFull, mode)

	ids := cfg.Plugins.IDs()
	require.Equal(t, basePluginIDs, ids[:3])
	require.Equal(t, []string{config.PluginGit, config.PluginGitHub}, ids[3:])

	git := cfg.Plugins[3]
	require.Equal(t, []string{config.ManifestPath}, git.Options["assets"])
	github := cfg.Plugins[4]
	require.Equal(t, []releaserc.Options{{"path": config.ArchivePath}}, github.Options["assets"])
	require.NotContains(t, github.Options, "successComment")
	require.NotContains(t, github.Options, "releasedLabels")
}

func TestAssembleRestrictedBranches(t *testing.T) {
	develop, mode := Assemble("develop")
	require.Equal(t, PublishModeRestricted, mode)

	ids := develop.Plugins.IDs()
	require.Equal(t, basePluginIDs, ids[:3])
	require.Equal(t, []string{config.PluginGitHub}, ids[3:])
	require.NotContains(t, ids, config.PluginGit)

	github := develop.Plugins[3]
	require.Equal(t, false, github.Options["successComment"])
	require.Equal(t, false, github.Options["releasedLabels"])
	require.Equal(t, []releaserc.Options{{"path": config.ArchivePath}}, github.Options["assets"])

	for _, branch := range []string{"feature/x", ""} {
		cfg, mode := Assemble(branch)
		require.Equal(t, PublishModeRestricted, mode)
		require.Equal(t, develop, cfg, branch)
	}
}

func TestAssembleStaticFields(t *testing.T) {
	cfg, _ := Assemble("release")
	require.Equal(t, config.Branches, cfg.Branches)
	require.Equal(t, config.CommitTypes, cfg.PresetConfig.Types)
	require.Equal(t, config.PrepareReleaseCmd, cfg.Plugins[2].Options["prepareCmd"])
}

func TestAssembleReturnsFreshConfig(t *testing.T) {
	first, _ := Assemble("release")
	first.Plugins[0].ID = "changed"
	first.Branches[0].Name = "changed"
	first.PresetConfig.Types[0].Section = "changed"

	second, _ := Assemble("release")
	require.Equal(t, config.PluginCommitAnalyzer, second.Plugins[0].ID)
	require.Equal(t, "release", second.Branches[0].Name)
	require.Equal(t, "Features :sparkles:", second.PresetConfig.Types[0].Section)
}

func TestAppendPublishPluginsKeepsBaseOrder(t *testing.T) {
	cfg := NewBaseConfig()
	AppendPublishPlugins(cfg, PublishModeFull)
	AppendPublishPlugins(cfg, PublishModeRestricted)
	require.Equal(t, append(basePluginIDs, config.PluginGit, config.PluginGitHub, config.PluginGitHub), cfg.Plugins.IDs())
}
