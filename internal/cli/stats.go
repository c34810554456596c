package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/todo"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, store, err := loadStore()
	if err != nil {
		return err
	}

	s := todo.Stats(store.Tasks(), time.Now())

	fmt.Printf("Total tasks:     %d\n", s.Total)
	fmt.Printf("  Pending:       %d\n", s.Pending)
	fmt.Printf("  In progress:   %d\n", s.InProgress)
	fmt.Printf("  Completed:     %d\n", s.Completed)
	fmt.Println()
	fmt.Printf("By priority:     high %d / medium %d / low %d\n",
		s.ByPriority[todo.PriorityHigh],
		s.ByPriority[todo.PriorityMedium],
		s.ByPriority[todo.PriorityLow])
	fmt.Println()
	fmt.Printf("Overdue:         %d\n", s.Overdue)
	fmt.Printf("Due in 24h:      %d\n", s.DueSoon)
	fmt.Printf("Completion rate: %.1f%%\n", s.CompletionRate())
	return nil
}
