package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/wego/internal/render"
	"github.com/f3rmion/wego/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [location]",
	Short: "Page through the forecast in the TUI",
	Long: `Fetch the forecast once and page through the day tables in an
interactive terminal UI.

Controls:
  ←/→ or h/l    Previous / next day
  ↑/↓ or j/k    Scroll
  q or Esc      Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	report, opts, err := fetchReport(cmd, args)
	if err != nil {
		return err
	}

	current, err := render.Current(*report, opts)
	if err != nil {
		return err
	}
	days, err := render.Days(*report, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.New(render.Title(*report), current, days),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
