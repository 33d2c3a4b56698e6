// Package models defines core data structures for inkwell
package models

// BlogPost represents a single blog entry.
//
// ID is assigned by the store and never changes. Date is the display-formatted
// creation date, stamped once when the post is created and kept as-is through
// every later edit. All other fields are mutable via the edit form.
type BlogPost struct {
	ID       int    `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
	Date     string `json:"date" db:"date"`
	Body     string `json:"body" db:"body"`
	Author   string `json:"author" db:"author"`
	ImgURL   string `json:"img_url" db:"img_url"`
}
