package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full details of one task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	_, store, err := loadStore()
	if err != nil {
		return err
	}

	task, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("task #%d not found", id)
	}
	printTaskDetail(task)
	return nil
}
