package main

import (
	"context"
	"fmt"

	"github.com/da-moon/datapull/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the embedded example configuration to disk.
//
// Refuses to overwrite an existing file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("Edit it, or override it per command with --config\n")
	return nil
}

// ConfigShow prints the resolved configuration as JSON.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)
	return r.writeJSON(config, cmd.Bool("pretty"))
}
