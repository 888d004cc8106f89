package domain

import "time"

type JournalEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Prompt   string    `json:"prompt"`
	Response string    `json:"response"`
}

type FavoriteAffirmation struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid indica si el tema es dark o light.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}
