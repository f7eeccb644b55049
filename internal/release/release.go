package release

import (
	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/pkg/releaserc"
)

type PublishMode string

const (
	PublishModeFull       PublishMode = "full"
	PublishModeRestricted PublishMode = "restricted"
)

// SelectPublishMode falls back to restricted publishing for every branch that
// does not qualify, including an empty or unknown branch name.
func SelectPublishMode(branch string, branches releaserc.Branches) PublishMode {
	if branches.QualifiesForFullPublish(branch) {
		return PublishModeFull
	}
	return PublishModeRestricted
}

func publishPlugins(mode PublishMode) releaserc.Plugins {
	if mode == PublishModeFull {
		return config.FullPublishPlugins()
	}
	return config.RestrictedPublishPlugins()
}

func AppendPublishPlugins(cfg *releaserc.Config, mode PublishMode) {
	cfg.Plugins = append(cfg.Plugins, publishPlugins(mode)...)
}

func NewBaseConfig() *releaserc.Config {
	return &releaserc.Config{
		Branches: append(releaserc.Branches{}, config.Branches...),
		Plugins:  config.BasePlugins(),
		PresetConfig: releaserc.PresetConfig{
			Types: append(releaserc.CommitTypes{}, config.CommitTypes...),
		},
	}
}

func Assemble(branch string) (*releaserc.Config, PublishMode) {
	cfg := NewBaseConfig()
	mode := SelectPublishMode(branch, cfg.Branches)
	AppendPublishPlugins(cfg, mode)
	return cfg, mode
}
