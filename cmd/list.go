package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// NewListCmd creates the `vibecbr list` command.
func NewListCmd(svc **library.Service) *cobra.Command {
	var (
		sortBy     string
		genre      string
		status     string
		read       string
		showTitles bool
	)

	cmd := &cobra.Command{
		Use:   "list [location]",
		Short: "List folders or titles at a library location",
		Long: `List the contents of a library location.

The location is a slash-separated taxonomy path:
  vibecbr list                          # categories at the root
  vibecbr list Action                   # subcategories of Action
  vibecbr list Action/Shounen           # titles in Action/Shounen
  vibecbr list Action/Shounen/One\ Piece  # items of one title`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			state, err := s.NewState()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				state.Location = taxonomy.ParsePath(args[0])
			}
			state.Filters = models.FilterState{
				Genre:  genre,
				Status: status,
				Read:   models.ReadFilter(read),
			}

			criterion := s.Config.DefaultSort
			if sortBy != "" {
				criterion = browse.Criterion(sortBy)
			}

			if state.Location.Level == taxonomy.LevelTitle {
				for _, item := range state.Items(criterion) {
					printItem(item)
				}
				return nil
			}

			if showTitles {
				for _, title := range state.Titles(criterion) {
					printTitle(title)
				}
				return nil
			}

			for _, folder := range state.Folders(criterion) {
				marker := "/"
				if folder.IsTitle {
					marker = ""
				}
				fmt.Printf("%s%s  (%d items)%s\n",
					folder.DisplayName, marker, folder.Count, progressSuffix(folder.Stats))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort order (alpha-asc, alpha-desc, date-added, page-count, file-size, recent-read)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Filter by genre")
	cmd.Flags().StringVar(&status, "status", "", "Filter by series status")
	cmd.Flags().StringVarP(&read, "read", "r", "", "Filter by read state (completed, unread, reading)")
	cmd.Flags().BoolVarP(&showTitles, "titles", "t", false, "List titles instead of folders")

	return cmd
}

func printTitle(t library.TitleView) {
	fmt.Printf("%s  (%d items)%s\n", t.Name, t.Count, progressSuffix(t.Stats))
}

func printItem(item library.ItemView) {
	var parts []string
	if item.Volume != nil {
		parts = append(parts, fmt.Sprintf("v%g", *item.Volume))
	}
	if item.Chapter != nil {
		parts = append(parts, fmt.Sprintf("c%g", *item.Chapter))
	}
	detail := ""
	if len(parts) > 0 {
		detail = " [" + strings.Join(parts, " ") + "]"
	}
	progress := ""
	if item.Stats.HasProgress {
		progress = fmt.Sprintf("  %.0f%%", item.Stats.Percent)
	}
	fmt.Printf("%s%s  %s%s\n", item.Filename, detail, item.SizeStr, progress)
}

func progressSuffix(stats browse.TitleStats) string {
	if !stats.HasProgress {
		return ""
	}
	return fmt.Sprintf("  %.0f%% read", stats.Percent)
}
