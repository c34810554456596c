package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task permanently",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	if !store.Delete(id) {
		return fmt.Errorf("task #%d not found", id)
	}
	if err := saveStore(cfg, store); err != nil {
		return err
	}

	fmt.Printf("Deleted task #%d\n", id)
	return nil
}
