package model

// Column belongs to exactly one user's board. Order values are assigned at
// creation and never renumbered on deletion, so the sequence may contain
// gaps; callers sort by Order instead of relying on slice position.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}
