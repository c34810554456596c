package cli

import (
	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/todo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered and sorted",
	Long: `Lists tasks sorted by creation time. Filters are AND-combined; the tag
filter requires a task to carry every listed tag.`,
	Example: `  recur list --status pending --priority high
  recur list --tag work --tag urgent --sort due_date`,
	RunE: runList,
}

func init() {
	addListingFlags(listCmd)
}

// addListingFlags registers the filter/sort flags shared by list and search.
func addListingFlags(cmd *cobra.Command) {
	cmd.Flags().String("status", "", "Filter by status: pending, in_progress, or completed")
	cmd.Flags().String("priority", "", "Filter by priority: high, medium, or low")
	cmd.Flags().StringArrayP("tag", "t", nil, "Filter by tag (repeatable; task must have all)")
	cmd.Flags().String("sort", "", "Sort by: priority, due_date, created_at, or title")
	cmd.Flags().String("order", "asc", "Sort order: asc or desc")
}

// listingFilter translates the shared flags into a core filter.
func listingFilter(cmd *cobra.Command) (todo.ListFilter, error) {
	var f todo.ListFilter

	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		status, err := todo.ParseStatus(statusFlag)
		if err != nil {
			return f, err
		}
		f.Status = status
	}
	if priorityFlag, _ := cmd.Flags().GetString("priority"); priorityFlag != "" {
		priority, err := todo.ParsePriority(priorityFlag)
		if err != nil {
			return f, err
		}
		f.Priority = priority
	}

	tags, _ := cmd.Flags().GetStringArray("tag")
	normalized, err := todo.NormalizeTags(tags)
	if err != nil {
		return f, err
	}
	f.Tags = normalized
	return f, nil
}

// applySort re-sorts a listing when --sort was supplied. An unknown field
// degrades to created_at ordering rather than erroring.
func applySort(cmd *cobra.Command, tasks []todo.Task) []todo.Task {
	sortFlag, _ := cmd.Flags().GetString("sort")
	if sortFlag == "" {
		return tasks
	}
	orderFlag, _ := cmd.Flags().GetString("order")
	return todo.Sort(tasks, todo.SortField(sortFlag), todo.SortOrder(orderFlag))
}

func runList(cmd *cobra.Command, args []string) error {
	_, store, err := loadStore()
	if err != nil {
		return err
	}

	filter, err := listingFilter(cmd)
	if err != nil {
		return err
	}

	tasks := todo.List(store.Tasks(), filter)
	printTasks(applySort(cmd, tasks))
	return nil
}
