package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/da-moon/datapull/internal/download"
	"github.com/da-moon/datapull/internal/shared"
	"github.com/da-moon/datapull/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	client *download.Client
	engine tasks.DatasetEngine
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *download.Client
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = clientFromConfig(opts.Config)
	}

	engine := tasks.NewPullEngine(opts.Client)

	return &Runner{
		config: opts.Config,
		client: opts.Client,
		engine: engine,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// clientFromConfig builds a download client from the [http] config section.
// Zero-valued settings fall back to the client defaults.
func clientFromConfig(config *shared.Config) *download.Client {
	opts := download.DefaultOptions()
	opts.Timeout = config.HTTP.Timeout()
	if config.HTTP.RetryWaitSeconds > 0 {
		opts.RetryWait = config.HTTP.RetryWait()
	}
	if config.HTTP.RetryAttempts > 0 {
		opts.RetryAttempts = config.HTTP.RetryAttempts
	}
	if config.HTTP.UserAgent != "" {
		opts.UserAgent = config.HTTP.UserAgent
	}
	return download.NewClient(opts)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tripsCommand, powerliftingCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig returns the configuration for a command invocation. A
// readable --config path wins over the config the runner was built with.
func (r *Runner) resolveConfig(cmd *cli.Command) *shared.Config {
	configPath := cmd.String("config")
	if configPath == "" {
		return r.config
	}
	if _, err := os.Stat(configPath); err != nil {
		return r.config
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		r.logger.Warn("failed to load config, using current settings", "path", configPath, "error", err)
		return r.config
	}
	return config
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
