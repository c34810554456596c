package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/todo"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing task",
	Long: `Updates only the supplied fields; everything else keeps its value.
Clearing the due date or the recurrence is distinct from leaving it alone,
so each has its own flag.`,
	Example: `  recur update 3 --status in_progress
  recur update 3 --due "2026-02-01 09:00"
  recur update 3 --clear-due --clear-every`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	addUpdateFlags(updateCmd)
}

func addUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().StringP("desc", "d", "", "New description")
	cmd.Flags().String("status", "", "New status: pending, in_progress, or completed")
	cmd.Flags().StringP("priority", "p", "", "New priority: high, medium, or low")
	cmd.Flags().StringArrayP("tag", "t", nil, "Replace tags (repeatable)")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().String("every", "", "New recurrence: daily, weekly, monthly, or yearly")
	cmd.Flags().Bool("clear-every", false, "Remove the recurrence")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	update, err := buildUpdate(cmd)
	if err != nil {
		return err
	}

	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	task, ok, err := store.Update(id, update)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("task #%d not found", id)
	}
	if err := saveStore(cfg, store); err != nil {
		return err
	}

	fmt.Printf("Updated task #%d\n", task.ID)
	if verbose {
		printTaskDetail(task)
	}
	return nil
}

// buildUpdate translates the flags into a partial update, validating the
// typed fields at this boundary so the core only sees well-formed values.
func buildUpdate(cmd *cobra.Command) (todo.Update, error) {
	var u todo.Update

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		u.Title = &title
	}
	if cmd.Flags().Changed("desc") {
		desc, _ := cmd.Flags().GetString("desc")
		u.Description = &desc
	}
	if cmd.Flags().Changed("status") {
		statusFlag, _ := cmd.Flags().GetString("status")
		status, err := todo.ParseStatus(statusFlag)
		if err != nil {
			return u, err
		}
		u.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priorityFlag, _ := cmd.Flags().GetString("priority")
		priority, err := todo.ParsePriority(priorityFlag)
		if err != nil {
			return u, err
		}
		u.Priority = &priority
	}
	if cmd.Flags().Changed("tag") {
		tags, _ := cmd.Flags().GetStringArray("tag")
		u.Tags = &tags
	}

	dueFlag, _ := cmd.Flags().GetString("due")
	clearDue, _ := cmd.Flags().GetBool("clear-due")
	switch {
	case dueFlag != "" && clearDue:
		return u, fmt.Errorf("--due and --clear-due are mutually exclusive")
	case dueFlag != "":
		due, err := parseDue(dueFlag)
		if err != nil {
			return u, err
		}
		u.DueDate = todo.SetTime(due)
	case clearDue:
		u.DueDate = todo.ClearTime()
	}

	everyFlag, _ := cmd.Flags().GetString("every")
	clearEvery, _ := cmd.Flags().GetBool("clear-every")
	switch {
	case everyFlag != "" && clearEvery:
		return u, fmt.Errorf("--every and --clear-every are mutually exclusive")
	case everyFlag != "":
		pattern, err := todo.ParsePattern(everyFlag)
		if err != nil {
			return u, err
		}
		u.Recurrence = todo.SetPattern(pattern)
	case clearEvery:
		u.Recurrence = todo.ClearPattern()
	}

	return u, nil
}
