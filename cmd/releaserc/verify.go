package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/internal/release"
	"github.com/divera-ha/releaserc/internal/remote"
	"github.com/spf13/cobra"
)

func newVerifyVersionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-version <version>",
		Short: "Check that a version may be released from the current branch",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Run = c.runE(func(cmd *cobra.Command, args []string) error {
		branch := must(cmd.Flags().GetString("branch"))
		return c.verifyVersion(branch, args[0])
	})
	return cmd
}

func (c *cli) verifyVersion(branch, version string) error {
	v, err := release.VerifyVersion(config.Branches, branch, version)
	if err != nil {
		return err
	}
	c.log.Infof("version %s can be released from %s", v, branch)
	_, err = fmt.Fprintln(c.out, v.String())
	return err
}

func newDoctorCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that all configured release branches exist on GitHub",
		Args:  cobra.NoArgs,
	}
	cmd.Run = c.runE(func(cmd *cobra.Command, _ []string) error {
		c.cfg.GitHubRepository = must(cmd.Flags().GetString("repository"))
		branch := must(cmd.Flags().GetString("branch"))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return c.doctor(ctx, branch)
	})
	cmd.Flags().StringP("repository", "r", c.cfg.GitHubRepository, "the GitHub repository (owner/repo, defaults to $GITHUB_REPOSITORY)")
	return cmd
}

func (c *cli) doctor(ctx context.Context, branch string) error {
	if err := config.Branches.Validate(); err != nil {
		return fmt.Errorf("invalid release branches: %w", err)
	}
	repo, err := c.cfg.GetRepository()
	if err != nil {
		return err
	}
	c.log.Infof("checking release branches of %s...", repo)
	statuses, err := remote.CheckReleaseBranches(ctx, c.githubClient(), repo, config.Branches)
	if err != nil {
		return err
	}

	missing := 0
	for _, s := range statuses {
		mode := release.SelectPublishMode(s.Branch.Name, config.Branches)
		if !s.Exists {
			missing++
			c.log.Errorf("release branch %s (%s publish) does not exist", s.Branch.Name, mode)
			continue
		}
		c.log.Infof("release branch %s (%s publish) found", s.Branch.Name, mode)
	}

	if branch != "" && config.Branches.Find(branch) == nil {
		c.log.Warnf("branch %q is not a release branch and would use %s publish", branch, release.PublishModeRestricted)
	}

	if missing > 0 {
		return fmt.Errorf("%d release branch(es) missing in %s", missing, repo)
	}
	return nil
}
