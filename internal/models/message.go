package models

import "time"

// Message is a contact form submission. Field names follow the JSON shape
// stored in the data file and returned by the API.
type Message struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// NewID returns a creation-time identifier (milliseconds since epoch).
// Not guaranteed unique under concurrent writes; matches the historical
// data files, so it stays.
func NewID() int64 {
	return time.Now().UnixMilli()
}

// DisplayTime formats a time the way the site has always shown it
// (US locale date string).
func DisplayTime(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
