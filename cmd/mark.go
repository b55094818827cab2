package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

// NewMarkCmd creates the `vibecbr mark` command.
func NewMarkCmd(svc **library.Service) *cobra.Command {
	var (
		page      int
		completed bool
		remove    bool
		purge     bool
	)

	cmd := &cobra.Command{
		Use:   "mark [item-id]",
		Short: "Record or clear reading progress for an item",
		Long: `Record reading progress for an item by id.

Examples:
  vibecbr mark 1a2b3c --page 42          # set the current page
  vibecbr mark 1a2b3c --completed        # mark the item finished
  vibecbr mark 1a2b3c --remove           # forget this item's progress
  vibecbr mark --purge                   # wipe all reading history`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			if purge {
				if err := s.Progress.Clear(); err != nil {
					return fmt.Errorf("purge history: %w", err)
				}
				fmt.Println("Reading history cleared")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("an item id is required unless --purge is given")
			}
			id := args[0]

			if remove {
				if err := s.Progress.Remove(id); err != nil {
					return fmt.Errorf("remove progress: %w", err)
				}
				fmt.Printf("Progress for %s removed\n", id)
				return nil
			}

			if err := s.Progress.Update(id, page, completed); err != nil {
				return fmt.Errorf("update progress: %w", err)
			}
			fmt.Printf("Progress for %s updated\n", id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "Current page")
	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "Mark the item completed")
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove this item's progress entry")
	cmd.Flags().BoolVar(&purge, "purge", false, "Delete all reading history")

	return cmd
}
