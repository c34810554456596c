package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Complete a task, scheduling the next occurrence if it recurs",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	completed, next, ok := store.Complete(id)
	if !ok {
		return fmt.Errorf("task #%d not found", id)
	}
	if err := saveStore(cfg, store); err != nil {
		return err
	}

	fmt.Printf("Completed task #%d: %s\n", completed.ID, completed.Title)
	if next != nil {
		fmt.Printf("Next occurrence scheduled as #%d, due %s\n",
			next.ID, next.DueDate.Format("2006-01-02 15:04"))
	}
	return nil
}
