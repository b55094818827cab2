package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/internal/tui/browser"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

// NewBrowseCmd creates the `vibecbr browse` command.
func NewBrowseCmd(svc **library.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Launch an interactive TUI for browsing the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("browse mode requires an interactive terminal")
			}

			s := *svc

			state, err := s.NewState()
			if err != nil {
				return fmt.Errorf("load library: %w", err)
			}

			model := browser.New(s, state)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
