package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task lives inside one column of a board. Moving a task between columns is
// a ColumnID mutation, not a delete and recreate.
type Task struct {
	ID          string   `json:"id"`
	ColumnID    string   `json:"columnId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Progress    int      `json:"progress"`
	CreatedAt   int64    `json:"createdAt"`
	Order       int      `json:"order"`
}
