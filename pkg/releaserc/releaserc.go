package releaserc

import (
	"encoding/json"
)

// Config is the object handed to semantic-release.
type Config struct {
	Branches     Branches     `json:"branches" yaml:"branches"`
	Plugins      Plugins      `json:"plugins" yaml:"plugins"`
	PresetConfig PresetConfig `json:"presetConfig" yaml:"presetConfig"`
}

type PresetConfig struct {
	Types CommitTypes `json:"types" yaml:"types"`
}

type CommitType struct {
	Type    string `json:"type" yaml:"type"`
	Section string `json:"section" yaml:"section"`
}

type CommitTypes []CommitType

func (l CommitTypes) Find(commitType string) *CommitType {
	for i := range l {
		if l[i].Type == commitType {
			return &l[i]
		}
	}
	return nil
}

type Options map[string]any

// Plugin is either a bare identifier or an identifier with options.
type Plugin struct {
	ID      string
	Options Options
}

func NewPlugin(id string, opts ...Options) Plugin {
	p := Plugin{ID: id}
	if len(opts) > 0 {
		p.Options = opts[0]
	}
	return p
}

func (p Plugin) value() any {
	if p.Options == nil {
		return p.ID
	}
	return []any{p.ID, p.Options}
}

func (p Plugin) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value())
}

func (p Plugin) MarshalYAML() (any, error) {
	return p.value(), nil
}

type Plugins []Plugin

func (l Plugins) IDs() []string {
	ret := make([]string, len(l))
	for i, p := range l {
		ret[i] = p.ID
	}
	return ret
}

func (l Plugins) Clone() Plugins {
	ret := make(Plugins, len(l))
	copy(ret, l)
	return ret
}
