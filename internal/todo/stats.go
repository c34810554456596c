package todo

import "time"

// Summary aggregates a task collection for dashboards and the stats command.
type Summary struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int

	ByPriority map[Priority]int

	// Overdue counts open tasks whose due date has passed; DueSoon counts
	// open tasks due within the next 24 hours.
	Overdue int
	DueSoon int
}

// Stats computes a Summary over a snapshot. now anchors the overdue and
// due-soon buckets.
func Stats(tasks []Task, now time.Time) Summary {
	s := Summary{
		ByPriority: map[Priority]int{
			PriorityHigh:   0,
			PriorityMedium: 0,
			PriorityLow:    0,
		},
	}

	soon := now.Add(24 * time.Hour)
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case StatusCompleted:
			s.Completed++
		case StatusInProgress:
			s.InProgress++
		default:
			s.Pending++
		}
		s.ByPriority[t.Priority]++

		if t.Open() && t.DueDate != nil {
			if t.DueDate.Before(now) {
				s.Overdue++
			} else if !t.DueDate.After(soon) {
				s.DueSoon++
			}
		}
	}
	return s
}

// CompletionRate returns the completed fraction in percent, 0 for an empty
// collection.
func (s Summary) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}
