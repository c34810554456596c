package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/todo"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Adds a task to the store. A recurring task (--every) must also carry a
due date (--due), since the next occurrence is computed from it.`,
	Example: `  recur add "Buy groceries" --priority high --tag errands
  recur add "Daily Standup" --due "2026-01-06 09:00" --every daily`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringP("desc", "d", "", "Task description")
	addCmd.Flags().StringP("priority", "p", "", "Priority: high, medium, or low")
	addCmd.Flags().StringArrayP("tag", "t", nil, "Tag (repeatable, max 10)")
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	addCmd.Flags().String("every", "", "Recurrence: daily, weekly, monthly, or yearly")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	opts := todo.CreateOptions{}
	opts.Description, _ = cmd.Flags().GetString("desc")

	priorityFlag, _ := cmd.Flags().GetString("priority")
	if priorityFlag == "" {
		priorityFlag = cfg.Defaults.Priority
	}
	if priorityFlag != "" {
		priority, err := todo.ParsePriority(priorityFlag)
		if err != nil {
			return err
		}
		opts.Priority = priority
	}

	opts.Tags, _ = cmd.Flags().GetStringArray("tag")

	if dueFlag, _ := cmd.Flags().GetString("due"); dueFlag != "" {
		due, err := parseDue(dueFlag)
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	if everyFlag, _ := cmd.Flags().GetString("every"); everyFlag != "" {
		pattern, err := todo.ParsePattern(everyFlag)
		if err != nil {
			return err
		}
		opts.Recurrence = pattern
	}

	task, err := store.Create(args[0], opts)
	if err != nil {
		return err
	}
	if err := saveStore(cfg, store); err != nil {
		return err
	}

	fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
	if verbose {
		printTaskDetail(task)
	}
	return nil
}
