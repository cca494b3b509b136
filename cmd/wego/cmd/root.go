// Package cmd contains all CLI commands for wego.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/wego/internal/config"
	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/render"
	"github.com/f3rmion/wego/internal/wwo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var log = logrus.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wego [location]",
	Short: "Weather forecasts for the terminal",
	Long: `wego prints the current weather and a multi-day forecast as colored
tables with pictorial icons.

Each day table shows four periods (Morning, Noon, Evening, Night) with:
  - condition and description
  - temperature range (feels-like and actual)
  - wind direction, speed and gusts
  - visibility
  - precipitation and chance of rain

Configuration is read from $HOME/.config/wego/config.yaml and WEGO_*
environment variables. Run 'wego init' to create the file.

Example:
  wego
  wego Berlin --days 2
  wego 广州 --lang zh`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wego/config.yaml)")
	flags.Bool("verbose", false, "verbose output")
	flags.IntP("days", "d", render.DefaultDays, "number of days to show")
	flags.Int("cell-width", render.DefaultCellWidth, "terminal columns per table cell")
	flags.StringP("lang", "l", "", "alternate description language, e.g. zh")
	flags.Bool("romanize", false, "show Chinese descriptions as pinyin")
	flags.String("wide-glyphs", "cjk", "glyph width policy: cjk, unicode or none")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("days", flags.Lookup("days"))
	viper.BindPFlag("cell_width", flags.Lookup("cell-width"))
	viper.BindPFlag("lang", flags.Lookup("lang"))
	viper.BindPFlag("romanize", flags.Lookup("romanize"))
	viper.BindPFlag("wide_glyphs", flags.Lookup("wide-glyphs"))
}

// initConfig sets up logging and ENV variables.
func initConfig() {
	viper.SetEnvPrefix("WEGO")
	viper.AutomaticEnv()

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
}

// getConfigPath returns the configuration file path.
func getConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, config.FileName), nil
}

// resolveConfig layers flags and environment over the config file over defaults.
// A missing file is only an error when it was named with --config and
// allowMissing is false.
func resolveConfig(args []string, allowMissing bool) (config.Config, error) {
	cfg := config.Default()

	path, err := getConfigPath()
	if err != nil {
		return cfg, err
	}
	switch loaded, err := config.Load(path); {
	case err == nil:
		cfg = loaded
		log.WithField("path", path).Debug("loaded config file")
	case errors.Is(err, os.ErrNotExist) && (cfgFile == "" || allowMissing):
		log.WithField("path", path).Debug("no config file, using defaults")
	default:
		return cfg, err
	}

	defaults := map[string]any{
		"location":    cfg.Location,
		"api_key":     cfg.APIKey,
		"days":        cfg.Days,
		"cell_width":  cfg.CellWidth,
		"lang":        cfg.Lang,
		"romanize":    cfg.Romanize,
		"wide_glyphs": cfg.WideGlyphs,
		"base_url":    cfg.BaseURL,
		"timeout":     cfg.Timeout,
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if len(args) > 0 {
		cfg.Location = args[0]
	}
	return cfg, cfg.Validate()
}

// fetchReport resolves configuration and retrieves the forecast.
func fetchReport(cmd *cobra.Command, args []string) (*forecast.Report, render.Options, error) {
	cfg, err := resolveConfig(args, false)
	if err != nil {
		return nil, render.Options{}, err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, render.Options{}, err
	}
	if cfg.APIKey == "" {
		return nil, opts, errors.New("no API key configured: run 'wego init --api-key <key>' or set WEGO_API_KEY")
	}

	log.WithFields(logrus.Fields{
		"location": cfg.Location,
		"days":     cfg.Days,
		"language": opts.Language,
	}).Debug("requesting forecast")

	client := wwo.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, log)
	report, err := client.Fetch(cmd.Context(), cfg.Query())
	if err != nil {
		return nil, opts, fmt.Errorf("fetching forecast for %s: %w", cfg.Location, err)
	}
	return report, opts, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	report, opts, err := fetchReport(cmd, args)
	if err != nil {
		return err
	}
	return render.Report(cmd.OutOrStdout(), *report, opts)
}
