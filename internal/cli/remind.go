package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/recur/internal/config"
	"github.com/jyang234/recur/internal/notify"
)

var (
	remindWindow  int
	remindHistory bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show reminders for tasks due soon",
	Long: `Checks for open tasks due within the look-ahead window and prints a
reminder line for each. Deliveries are appended to a notification history
so a cron job can run this repeatedly without losing track of what fired.`,
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().IntVarP(&remindWindow, "window", "w", 0, "Look-ahead window in minutes (default from config)")
	remindCmd.Flags().BoolVar(&remindHistory, "history", false, "Show delivered notifications instead of checking")
}

func runRemind(cmd *cobra.Command, args []string) error {
	if remindHistory {
		return showHistory()
	}

	cfg, store, err := loadStore()
	if err != nil {
		return err
	}

	window := cfg.ReminderWindow()
	if remindWindow > 0 {
		window = time.Duration(remindWindow) * time.Minute
	}

	dispatcher := &notify.Dispatcher{
		Out:         os.Stdout,
		HistoryPath: config.NotificationsPath(),
		Window:      window,
		Retention:   cfg.Retention(),
	}

	delivered, err := dispatcher.Run(store.Tasks(), time.Now())
	if err != nil {
		return err
	}
	if len(delivered) == 0 {
		fmt.Println("No tasks due soon.")
	}
	return nil
}

func showHistory() error {
	history, err := notify.History(config.NotificationsPath())
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No notifications recorded.")
		return nil
	}
	for _, n := range history {
		fmt.Printf("%s  [#%d] %s\n", n.SentAt.Format("2006-01-02 15:04"), n.TaskID, n.Message)
	}
	return nil
}
