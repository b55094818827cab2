package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

// NewStatsCmd creates the `vibecbr stats` command.
func NewStatsCmd(svc **library.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			stats, err := s.Progress.ReadStats()
			if err != nil {
				return fmt.Errorf("read stats: %w", err)
			}

			fmt.Printf("Comics started:   %d\n", stats.Started)
			fmt.Printf("Comics completed: %d\n", stats.Completed)
			fmt.Printf("Pages read:       %d\n", stats.PagesRead)
			fmt.Printf("Completion rate:  %.1f%%\n", stats.CompletionRate)
			return nil
		},
	}
}
