package model

import "time"

// NewsItem is a raw article as returned by the news provider.
// Author, Description and URL may be absent in the payload.
type NewsItem struct {
	Source      string    `json:"source"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// NewsRow represents a news article in the database
type NewsRow struct {
	ID          int64     `db:"id" json:"id"`
	CountryID   int64     `db:"country_id" json:"country_id"`
	Source      string    `db:"source" json:"source"`
	Author      string    `db:"author" json:"author"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	URL         string    `db:"url" json:"url"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}
