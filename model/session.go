package model

// Session represents one logged-in context. Several sessions may reference
// the same user at once; each is independent of the others.
type Session struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Token        string `json:"token"`
	CreatedAt    int64  `json:"createdAt"`
	LastActivity int64  `json:"lastActivity"`
}
