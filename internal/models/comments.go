package models

// Comment is tied to both an event and the registered user who wrote it.
// Only organizers may delete comments.
type Comment struct {
	ID        int64  `db:"id" json:"id"`
	EventID   int64  `db:"event_id" json:"event_id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	Text      string `db:"comment" json:"text"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

// CommentView is a comment joined with the author's username for listings.
type CommentView struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
}

// Cohost is free-form: any caller may attach one to an event and the email
// is not validated against existing users.
type Cohost struct {
	ID      int64  `db:"id" json:"id"`
	EventID int64  `db:"event_id" json:"event_id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
}
