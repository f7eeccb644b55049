package releaserc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoBranchName    = errors.New("release branch without name")
	ErrDuplicateBranch = errors.New("duplicate release branch")
)

// Branch is a release branch descriptor. A bare branch is written as its name
// and always denotes final releases; a structured branch is written as an
// object and may carry a prerelease tag.
type Branch struct {
	Name       string
	Prerelease string
	structured bool
}

func BareBranch(name string) Branch {
	return Branch{Name: name}
}

func StructuredBranch(name, prerelease string) Branch {
	return Branch{Name: name, Prerelease: prerelease, structured: true}
}

func (b Branch) IsStructured() bool {
	return b.structured
}

func (b Branch) IsPrerelease() bool {
	return b.structured && b.Prerelease != ""
}

type branchRecord struct {
	Name       string `json:"name" yaml:"name"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
}

func (b Branch) value() any {
	if !b.structured {
		return b.Name
	}
	return branchRecord{Name: b.Name, Prerelease: b.Prerelease}
}

func (b Branch) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value())
}

func (b Branch) MarshalYAML() (any, error) {
	return b.value(), nil
}

type Branches []Branch

func (l Branches) Find(name string) *Branch {
	if name == "" {
		return nil
	}
	for i := range l {
		if l[i].Name == name {
			return &l[i]
		}
	}
	return nil
}

// QualifiesForFullPublish reports whether name matches a bare branch or a
// structured branch without a prerelease tag. Prerelease branches are release
// branches too, but never qualify.
func (l Branches) QualifiesForFullPublish(name string) bool {
	if name == "" {
		return false
	}
	for _, b := range l {
		if b.Name != name {
			continue
		}
		if !b.structured || b.Prerelease == "" {
			return true
		}
	}
	return false
}

// Validate checks that every branch is named and that no name appears twice,
// which keeps the lookup in Find unambiguous.
func (l Branches) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for i, b := range l {
		if b.Name == "" {
			return fmt.Errorf("%w: branch #%d", ErrNoBranchName, i)
		}
		if _, ok := seen[b.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBranch, b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}
