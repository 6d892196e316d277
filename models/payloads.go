package models

import "time"

// GoalPayload is the decoded form of an Entity payload with Kind == KindGoal.
type GoalPayload struct {
	// Title is the human-readable name of the goal.
	Title string `json:"title"`

	// Description is optional free-form text describing the goal.
	Description string `json:"description,omitempty"`

	// TargetDate is the date the user aims to complete the goal by.
	TargetDate *time.Time `json:"target_date,omitempty"`

	// Completed marks the goal as achieved.
	Completed bool `json:"completed"`
}

// HabitPayload is the decoded form of an Entity payload with Kind == KindHabit.
type HabitPayload struct {
	// Name is the human-readable name of the habit.
	Name string `json:"name"`

	// Schedule describes the recurrence, e.g. "daily" or "mon,wed,fri".
	Schedule string `json:"schedule,omitempty"`

	// Reminder is an optional clock time ("07:30") for a local reminder.
	Reminder string `json:"reminder,omitempty"`

	// ArchivedAt is set when the user archives the habit without
	// deleting its history.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// HabitEntryPayload is the decoded form of an Entity payload with
// Kind == KindHabitEntry.
type HabitEntryPayload struct {
	// HabitID references the owning habit entity.
	HabitID string `json:"habit_id"`

	// Day is the calendar day the entry belongs to, in YYYY-MM-DD format.
	Day string `json:"day"`

	// Done marks the habit as completed for that day.
	Done bool `json:"done"`

	// Note contains optional free-form text attached to the entry.
	Note string `json:"note,omitempty"`
}
