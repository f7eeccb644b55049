package config

import "github.com/divera-ha/releaserc/pkg/releaserc"

const (
	ManifestPath = "custom_components/divera/manifest.json"
	ArchivePath  = "custom_components/divera/divera.zip"

	PrepareReleaseCmd = "./scripts/prepare-release.sh ${nextRelease.version}"
)

const (
	PluginCommitAnalyzer        = "@semantic-release/commit-analyzer"
	PluginReleaseNotesGenerator = "@semantic-release/release-notes-generator"
	PluginExec                  = "@semantic-release/exec"
	PluginGit                   = "@semantic-release/git"
	PluginGitHub                = "@semantic-release/github"
)

var Branches = releaserc.Branches{
	releaserc.BareBranch("release"),
	releaserc.StructuredBranch("develop", "rc"),
}

// BasePlugins run on every branch, in this order.
func BasePlugins() releaserc.Plugins {
	return releaserc.Plugins{
		releaserc.NewPlugin(PluginCommitAnalyzer),
		releaserc.NewPlugin(PluginReleaseNotesGenerator),
		releaserc.NewPlugin(PluginExec, releaserc.Options{
			"prepareCmd": PrepareReleaseCmd,
		}),
	}
}

func FullPublishPlugins() releaserc.Plugins {
	return releaserc.Plugins{
		releaserc.NewPlugin(PluginGit, releaserc.Options{
			"assets": []string{ManifestPath},
		}),
		releaserc.NewPlugin(PluginGitHub, releaserc.Options{
			"assets": []releaserc.Options{{"path": ArchivePath}},
		}),
	}
}

// RestrictedPublishPlugins still creates the GitHub release but does not
// comment on or label the released issues and pull requests.
func RestrictedPublishPlugins() releaserc.Plugins {
	return releaserc.Plugins{
		releaserc.NewPlugin(PluginGitHub, releaserc.Options{
			"successComment": false,
			"releasedLabels": false,
			"assets":         []releaserc.Options{{"path": ArchivePath}},
		}),
	}
}

var CommitTypes = releaserc.CommitTypes{
	{Type: "feat", Section: "Features :sparkles:"},
	{Type: "feature", Section: "Features :sparkles:"},
	{Type: "fix", Section: "Bug Fixes :bug:"},
	{Type: "docs", Section: "Documentation :books:"},
	{Type: "refactor", Section: "Code Refactoring :hammer:"},
	{Type: "test", Section: "Tests :umbrella:"},
	{Type: "ci", Section: "Continuous Integration :wrench:"},
}
