// Package presets provides predefined task templates for common life areas,
// used by 'recur seed' to populate a store with a realistic starting set.
package presets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jyang234/recur/internal/todo"
)

// Template describes one task to seed. Recurring templates get a due date
// relative to the base time passed to Apply; one-off templates stay undated.
type Template struct {
	Title       string
	Description string
	Priority    todo.Priority
	Tags        []string
	Recurrence  todo.Pattern
}

var categories = map[string][]Template{
	"prayer": {
		{Title: "Fajr Prayer", Description: "Morning prayer before sunrise", Priority: todo.PriorityHigh, Tags: []string{"prayer", "fajr"}, Recurrence: todo.PatternDaily},
		{Title: "Dhuhr Prayer", Description: "Afternoon prayer at noon", Priority: todo.PriorityHigh, Tags: []string{"prayer", "dhuhr"}, Recurrence: todo.PatternDaily},
		{Title: "Asr Prayer", Description: "Late afternoon prayer", Priority: todo.PriorityHigh, Tags: []string{"prayer", "asr"}, Recurrence: todo.PatternDaily},
		{Title: "Maghrib Prayer", Description: "Evening prayer at sunset", Priority: todo.PriorityHigh, Tags: []string{"prayer", "maghrib"}, Recurrence: todo.PatternDaily},
		{Title: "Isha Prayer", Description: "Night prayer", Priority: todo.PriorityHigh, Tags: []string{"prayer", "isha"}, Recurrence: todo.PatternDaily},
	},
	"school": {
		{Title: "Math Homework Ch5", Description: "Complete exercises 1-20", Priority: todo.PriorityHigh, Tags: []string{"homework", "math"}},
		{Title: "Physics Class", Description: "Attend weekly physics lecture", Priority: todo.PriorityMedium, Tags: []string{"class", "physics"}, Recurrence: todo.PatternWeekly},
		{Title: "Chemistry Exam Prep", Description: "Study for midterm exam", Priority: todo.PriorityHigh, Tags: []string{"exam", "chemistry"}},
		{Title: "English Essay", Description: "Write 1000-word essay", Priority: todo.PriorityMedium, Tags: []string{"homework", "english"}},
	},
	"fitness": {
		{Title: "Morning Workout", Description: "30-min cardio or strength training", Priority: todo.PriorityHigh, Tags: []string{"fitness", "gym"}, Recurrence: todo.PatternDaily},
		{Title: "Drink 8 Glasses Water", Description: "Stay hydrated throughout the day", Priority: todo.PriorityMedium, Tags: []string{"fitness", "water"}, Recurrence: todo.PatternDaily},
		{Title: "Yoga Session", Description: "Stretching and flexibility", Priority: todo.PriorityMedium, Tags: []string{"fitness", "yoga"}, Recurrence: todo.PatternWeekly},
	},
	"chores": {
		{Title: "Weekly Laundry", Description: "Wash, dry, and fold clothes", Priority: todo.PriorityMedium, Tags: []string{"chores", "laundry"}, Recurrence: todo.PatternWeekly},
		{Title: "Room Cleaning", Description: "Vacuum and organize bedroom", Priority: todo.PriorityLow, Tags: []string{"chores", "cleaning"}, Recurrence: todo.PatternWeekly},
		{Title: "Kitchen Cleaning", Description: "Wash dishes and clean counters", Priority: todo.PriorityMedium, Tags: []string{"chores", "kitchen"}, Recurrence: todo.PatternDaily},
	},
	"meals": {
		{Title: "Dinner Preparation", Description: "Cook evening meal", Priority: todo.PriorityMedium, Tags: []string{"meal", "cooking"}, Recurrence: todo.PatternDaily},
		{Title: "Grocery Shopping", Description: "Buy weekly groceries", Priority: todo.PriorityHigh, Tags: []string{"meal", "grocery"}, Recurrence: todo.PatternWeekly},
		{Title: "Meal Prep Sunday", Description: "Prepare meals for the week", Priority: todo.PriorityHigh, Tags: []string{"meal", "prep"}, Recurrence: todo.PatternWeekly},
	},
	"finance": {
		{Title: "Pay Electricity Bill", Description: "Monthly utility payment", Priority: todo.PriorityHigh, Tags: []string{"finance", "bills"}, Recurrence: todo.PatternMonthly},
		{Title: "Review Monthly Budget", Description: "Analyze expenses vs income", Priority: todo.PriorityMedium, Tags: []string{"finance", "budget"}, Recurrence: todo.PatternMonthly},
		{Title: "Transfer to Savings", Description: "Move 20% to savings account", Priority: todo.PriorityHigh, Tags: []string{"finance", "savings"}, Recurrence: todo.PatternMonthly},
	},
	"learning": {
		{Title: "LeetCode Daily", Description: "Solve 1 coding problem", Priority: todo.PriorityHigh, Tags: []string{"learning", "coding"}, Recurrence: todo.PatternDaily},
		{Title: "Read Tech Article", Description: "Read one technical blog post", Priority: todo.PriorityMedium, Tags: []string{"learning", "reading"}, Recurrence: todo.PatternDaily},
	},
	"work": {
		{Title: "Client Meeting - Weekly", Description: "Project status discussion", Priority: todo.PriorityHigh, Tags: []string{"work", "client"}, Recurrence: todo.PatternWeekly},
		{Title: "Send Monthly Invoice", Description: "Invoice for completed work", Priority: todo.PriorityHigh, Tags: []string{"work", "invoice"}, Recurrence: todo.PatternMonthly},
		{Title: "Update Portfolio", Description: "Add recent projects to portfolio", Priority: todo.PriorityMedium, Tags: []string{"work", "portfolio"}},
	},
}

// Categories returns the available category names, sorted.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns the templates for a category.
func Templates(category string) ([]Template, error) {
	templates, ok := categories[strings.ToLower(category)]
	if !ok {
		return nil, fmt.Errorf("unknown category %q (available: %s)",
			category, strings.Join(Categories(), ", "))
	}
	return templates, nil
}

// Apply seeds every template of a category into the store. Recurring
// templates are due at the base time plus one interval so the first
// occurrence lands in the future; one-off templates get no due date.
func Apply(store *todo.Store, category string, base time.Time) ([]todo.Task, error) {
	templates, err := Templates(category)
	if err != nil {
		return nil, err
	}

	created := make([]todo.Task, 0, len(templates))
	for _, tmpl := range templates {
		opts := todo.CreateOptions{
			Description: tmpl.Description,
			Priority:    tmpl.Priority,
			Tags:        tmpl.Tags,
			Recurrence:  tmpl.Recurrence,
		}
		if tmpl.Recurrence != todo.PatternNone {
			due := todo.NextDueDate(base, tmpl.Recurrence)
			opts.DueDate = &due
		}

		task, err := store.Create(tmpl.Title, opts)
		if err != nil {
			return created, fmt.Errorf("failed to seed %q: %w", tmpl.Title, err)
		}
		created = append(created, task)
	}
	return created, nil
}
