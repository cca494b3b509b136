package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/wego/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init [location]",
	Short: "Initialize wego configuration",
	Long: `Initialize the wego configuration file in your config directory.

The file records your location, API key and display settings. Flags given
to init (--days, --lang, --cell-width, ...) are written into the file.

Example:
  wego init --api-key 0123456789abcdef Guangzhou
  wego init --force --lang zh --romanize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	initCmd.Flags().String("api-key", "", "World Weather Online API key")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		viper.Set("api_key", key)
	}
	cfg, err := resolveConfig(args, true)
	if err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	if cfg.APIKey == "" {
		fmt.Fprintln(out, "  1. Add your World Weather Online key as api_key (or set WEGO_API_KEY)")
	} else {
		fmt.Fprintln(out, "  1. Review the settings in the file")
	}
	fmt.Fprintln(out, "  2. Run 'wego' to print the forecast")
	fmt.Fprintln(out, "  3. Run 'wego browse' to page through the days")

	return nil
}
