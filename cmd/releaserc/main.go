package main

import (
	"io"
	"os"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/google/go-github/v59/github"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type cli struct {
	log *logrus.Logger
	cfg *config.Config
	out io.Writer

	ghClient *github.Client
}

func (c *cli) githubClient() *github.Client {
	if c.ghClient == nil {
		c.ghClient = c.cfg.CreateGitHubClient()
	}
	return c.ghClient
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (c *cli) runE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			c.log.Errorf("ERROR: %v", err)
			os.Exit(1)
		}
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "releaserc",
		Short:   "Release configuration for the Divera integration",
		Version: version,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	cmd.PersistentFlags().StringP("branch", "b", c.cfg.BranchName, "the branch being released (defaults to $BRANCH_NAME)")
	cmd.PersistentFlags().SortFlags = false

	cmd.AddCommand(
		newRenderCmd(c),
		newModeCmd(c),
		newVerifyVersionCmd(c),
		newDoctorCmd(c),
	)
	return cmd
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	cfg.Version = version

	c := &cli{log: log, cfg: cfg, out: os.Stdout}
	if err := newRootCmd(c).Execute(); err != nil {
		os.Exit(1)
	}
}
