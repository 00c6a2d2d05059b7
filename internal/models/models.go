package models

// Post is the single domain entity: an id-identified title/body record
// with an owning user id. Field tags follow the demo API's wire format.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
