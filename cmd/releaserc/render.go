package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/internal/release"
	"github.com/divera-ha/releaserc/pkg/releaserc"
	"github.com/spf13/cobra"
)

func newRenderCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the semantic-release configuration for the current branch",
		Args:  cobra.NoArgs,
	}
	cmd.Run = c.runE(func(cmd *cobra.Command, _ []string) error {
		branch := must(cmd.Flags().GetString("branch"))
		output := must(cmd.Flags().GetString("output"))
		format := must(cmd.Flags().GetString("format"))
		return c.render(branch, output, format)
	})
	cmd.Flags().StringP("output", "o", "", "write the configuration to this file instead of stdout")
	cmd.Flags().StringP("format", "f", "", "output format: json or yaml (default: derived from --output, else json)")
	return cmd
}

func newModeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Print the publish mode selected for the current branch",
		Args:  cobra.NoArgs,
	}
	cmd.Run = c.runE(func(cmd *cobra.Command, _ []string) error {
		branch := must(cmd.Flags().GetString("branch"))
		mode := c.selectMode(branch)
		_, err := fmt.Fprintln(c.out, mode)
		return err
	})
	return cmd
}

func (c *cli) selectMode(branch string) release.PublishMode {
	mode := release.SelectPublishMode(branch, config.Branches)
	if config.Branches.Find(branch) == nil {
		c.log.Warnf("branch %q is not a release branch, using %s publish", branch, mode)
	} else {
		c.log.Infof("branch %q uses %s publish", branch, mode)
	}
	return mode
}

func (c *cli) render(branch, output, formatFlag string) error {
	var format releaserc.Format
	switch {
	case formatFlag != "":
		f, err := releaserc.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		format = f
	case output != "":
		format = releaserc.FormatFromPath(output)
	default:
		format = releaserc.FormatJSON
	}

	c.selectMode(branch)
	cfg, _ := release.Assemble(branch)

	if output == "" {
		return releaserc.Encode(c.out, cfg, format)
	}
	return writeConfigFile(output, cfg, format)
}

// writeConfigFile replaces path atomically so a failed render never leaves a
// truncated configuration behind.
func writeConfigFile(path string, cfg *releaserc.Config, format releaserc.Format) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	err = releaserc.Encode(f, cfg, format)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(f.Name(), 0o644)
	}
	if err == nil {
		err = os.Rename(f.Name(), path)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
