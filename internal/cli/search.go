package cli

import (
	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/todo"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks by keyword, filters, and creation-date range",
	Long: `Searches tasks with every supplied criterion AND-combined. The keyword
matches case-insensitively against title and description; --from and --to
bound the creation time inclusively.`,
	Example: `  recur search invoice --status pending
  recur search --tag finance --from 2026-01-01 --to 2026-01-31`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	addListingFlags(searchCmd)
	searchCmd.Flags().String("from", "", "Only tasks created on or after this date")
	searchCmd.Flags().String("to", "", "Only tasks created on or before this date")
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, store, err := loadStore()
	if err != nil {
		return err
	}

	filter, err := listingFilter(cmd)
	if err != nil {
		return err
	}

	criteria := todo.Criteria{
		Status:   filter.Status,
		Priority: filter.Priority,
		Tags:     filter.Tags,
	}
	if len(args) == 1 {
		criteria.Keyword = args[0]
	}

	if fromFlag, _ := cmd.Flags().GetString("from"); fromFlag != "" {
		from, err := parseDue(fromFlag)
		if err != nil {
			return err
		}
		criteria.DateFrom = &from
	}
	if toFlag, _ := cmd.Flags().GetString("to"); toFlag != "" {
		to, err := parseDue(toFlag)
		if err != nil {
			return err
		}
		criteria.DateTo = &to
	}

	tasks := todo.Match(store.Tasks(), criteria)
	printTasks(applySort(cmd, tasks))
	return nil
}
