package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/presets"
)

var seedList bool

var seedCmd = &cobra.Command{
	Use:   "seed [category]",
	Short: "Seed the store with preset tasks for a life area",
	Long: `Creates a ready-made set of tasks from a named category. Recurring
presets are scheduled one interval out from now; run 'recur seed --list' to
see what is available.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&seedList, "list", "l", false, "List available categories")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedList || len(args) == 0 {
		fmt.Println("Available categories:")
		for _, name := range presets.Categories() {
			templates, _ := presets.Templates(name)
			fmt.Printf("  %-10s %d tasks\n", name, len(templates))
		}
		return nil
	}

	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	created, err := presets.Apply(store, strings.ToLower(args[0]), time.Now())
	if err != nil {
		return err
	}
	if err := saveStore(cfg, store); err != nil {
		return err
	}

	fmt.Printf("Seeded %d tasks:\n", len(created))
	for _, task := range created {
		fmt.Println(taskLine(task))
	}
	return nil
}
