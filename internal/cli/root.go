// Package cli implements the roguewar command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"roguewar-client/internal/config"
	"roguewar-client/internal/logger"
	"roguewar-client/internal/roguewar"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// app carries state shared by every command of one invocation.
type app struct {
	version string
	flags   globalFlags
	cfg     *config.Config
	client  *roguewar.Client
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "roguewar",
		Short: "Query the RogueWar galaxy",
		Long: `roguewar reads the RogueWar star map and system constants.

Credentials and the service URL come from ROGUEWAR_* environment variables,
.env files or a .roguewar.yaml config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.configPath, "config", "", "config file (default .roguewar.yaml in . or $HOME)")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	f.StringVar(&a.flags.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(
		a.mapCommand(),
		a.constantsCommand(),
		a.routeCommand(),
		a.loadCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the command line with args.
func Execute(ctx context.Context, version string, args []string) error {
	root := NewRootCommand(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.LogFormat = a.flags.logFormat
	}
	logger.Configure(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	})
	logger.Banner(a.version)
	a.cfg = cfg
	return nil
}

func (a *app) api() *roguewar.Client {
	if a.client == nil {
		a.client = roguewar.NewClient(a.cfg)
	}
	return a.client
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := a.version
			if v == "" {
				v = "dev"
			}
			cmd.Printf("roguewar %s (User-Agent RogueWarApi/%s)\n", v, config.Version)
			return nil
		},
	}
}
