package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/divera-ha/releaserc/pkg/releaserc"
	"github.com/google/go-github/v59/github"
)

func getOwnerRepo(fullRepo string) (string, string) {
	owner, repo, found := strings.Cut(fullRepo, "/")
	if !found {
		return "", ""
	}

	return owner, repo
}

func ListBranches(ctx context.Context, ghClient *github.Client, fullRepo string) ([]string, error) {
	owner, repo := getOwnerRepo(fullRepo)
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("invalid repository %q, expected owner/repo", fullRepo)
	}
	ret := make([]string, 0)
	opts := &github.BranchListOptions{ListOptions: github.ListOptions{Page: 1, PerPage: 100}}
	for {
		branches, resp, err := ghClient.Repositories.ListBranches(ctx, owner, repo, opts)
		if err != nil {
			return nil, err
		}
		for _, branch := range branches {
			ret = append(ret, branch.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return ret, nil
}

type BranchStatus struct {
	Branch releaserc.Branch
	Exists bool
}

// CheckReleaseBranches looks up every configured release branch on the remote.
func CheckReleaseBranches(ctx context.Context, ghClient *github.Client, fullRepo string, branches releaserc.Branches) ([]BranchStatus, error) {
	remoteBranches, err := ListBranches(ctx, ghClient, fullRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches of %s: %w", fullRepo, err)
	}
	existing := make(map[string]bool, len(remoteBranches))
	for _, b := range remoteBranches {
		existing[b] = true
	}
	ret := make([]BranchStatus, len(branches))
	for i, b := range branches {
		ret[i] = BranchStatus{Branch: b, Exists: existing[b.Name]}
	}
	return ret, nil
}
