package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mchmarny/qfair/pkg/config"
	"github.com/mchmarny/qfair/pkg/logging"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "qfair"
	appConfigKey = "app-config"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	configDirFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Path to the config directory (optional, defaults to $HOME/.%s)", appName),
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml] (optional, overrides config)",
	}

	upperLimitFlag = &urfave.IntFlag{
		Name:  "upper-limit",
		Usage: "Highest possible quality score (optional, overrides config)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir    string
	Config *config.Config
}

func getConfig(cmd *urfave.Command) (*appConfig, error) {
	cfg, ok := cmd.Root().Metadata[appConfigKey].(*appConfig)
	if !ok || cfg == nil {
		return nil, errors.New("app config not initialized")
	}
	return cfg, nil
}

func newApp() *urfave.Command {
	return &urfave.Command{
		Name:                  appName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Usage:                 "Group fairness measures over quality score distributions",
		Metadata:              map[string]any{},
		Flags: []urfave.Flag{
			debugFlag,
			configDirFlag,
			formatFlag,
			upperLimitFlag,
		},
		Commands: []*urfave.Command{
			giniCmd,
			lwmCmd,
			mdgCmd,
			reportCmd,
			configCmd,
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}

			level := cfg.Config.LogLevel
			if cmd.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)

			cmd.Root().Metadata[appConfigKey] = cfg
			return ctx, nil
		},
	}
}

func loadConfig(cmd *urfave.Command) (*appConfig, error) {
	dir := cmd.String(configDirFlag.Name)
	if dir == "" {
		var err error
		if dir, _, err = config.GetOrCreateHomeDir(appName); err != nil {
			return nil, errors.Wrap(err, "resolving config directory")
		}
	}

	c, err := config.ReadOrCreate(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	if cmd.IsSet(formatFlag.Name) {
		c.Format = config.NormalizeFormat(cmd.String(formatFlag.Name))
	}
	if cmd.IsSet(upperLimitFlag.Name) {
		c.UpperLimit = int(cmd.Int(upperLimitFlag.Name))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "dir", dir, "upper_limit", c.UpperLimit, "format", c.Format)
	return &appConfig{Dir: dir, Config: c}, nil
}

func encode(w io.Writer, format string, v any) error {
	if format == config.FormatYAML {
		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}

func printResult(cmd *urfave.Command, v any) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return encode(w, cfg.Config.Format, v)
}
