package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

// NewScanCmd creates the `vibecbr scan` command.
func NewScanCmd(svc **library.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan the library root and refresh the item cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			items, err := s.Scan()
			if err != nil {
				return fmt.Errorf("scan library: %w", err)
			}

			fmt.Printf("Scanned %d items under %s\n", len(items), s.Config.LibraryRoot)
			return nil
		},
	}
}
