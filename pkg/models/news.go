package models

import "time"

// NewsItem represents single news article
type NewsItem struct {
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Source  string    `json:"source"`
	Content string    `json:"content"`
	URL     string    `json:"url"`
}
