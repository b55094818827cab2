package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// NewSearchCmd creates the `vibecbr search` command.
func NewSearchCmd(svc **library.Service) *cobra.Command {
	var (
		location string
		current  bool
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles across the library",
		Long: `Search for titles matching the query.

Examples:
  vibecbr search "solo leveling"            # search the whole library
  vibecbr search hero -l Action --current   # search only under Action`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			state, err := s.NewState()
			if err != nil {
				return err
			}
			if location != "" {
				state.Location = taxonomy.ParsePath(location)
			}

			scope := browse.ScopeEverywhere
			if current {
				scope = browse.ScopeCurrent
			}
			criterion := s.Config.DefaultSort
			if sortBy != "" {
				criterion = browse.Criterion(sortBy)
			}

			query := strings.Join(args, " ")
			results := state.Search(scope, query, criterion)
			if len(results) == 0 {
				fmt.Println("No results found")
				return nil
			}

			fmt.Printf("Found %d titles:\n", len(results))
			for _, title := range results {
				printTitle(title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Taxonomy location to search from")
	cmd.Flags().BoolVar(&current, "current", false, "Limit the search to the given location")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort order for results")

	return cmd
}
