package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/divera-ha/releaserc/pkg/releaserc"
)

var (
	ErrNotReleaseBranch = errors.New("not a release branch")
	ErrVersionMismatch  = errors.New("version does not match branch")
)

// VerifyVersion checks that version is a release the given branch may
// publish: prerelease branches only publish prereleases carrying their tag,
// all other release branches only publish final versions.
func VerifyVersion(branches releaserc.Branches, branch, version string) (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid version %s: %w", version, err)
	}
	b := branches.Find(branch)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotReleaseBranch, branch)
	}

	pre := v.Prerelease()
	if !b.IsPrerelease() {
		if pre != "" {
			return nil, fmt.Errorf("%w: %s is a prerelease but %s only publishes final versions", ErrVersionMismatch, v, b.Name)
		}
		return v, nil
	}
	if pre != b.Prerelease && !strings.HasPrefix(pre, b.Prerelease+".") {
		return nil, fmt.Errorf("%w: %s is not a %s prerelease required by %s", ErrVersionMismatch, v, b.Prerelease, b.Name)
	}
	return v, nil
}
