package model

// Board is the full column and task graph owned by one user, keyed by user
// id in the board map. Every task's ColumnID is expected to reference a
// column in the same board; this is enforced only by the cascade on column
// deletion.
type Board struct {
	Columns []Column `json:"columns"`
	Tasks   []Task   `json:"tasks"`
}
