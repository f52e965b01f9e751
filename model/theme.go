package model

// Theme is a global preference, persisted independently of any session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
