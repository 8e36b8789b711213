package domain

import "time"

// WatchlistEntry is a single title saved by a member.
type WatchlistEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Username  string    `json:"username" bson:"username"`
	TitleID   string    `json:"title_id" bson:"title_id"`
	TitleName string    `json:"title_name" bson:"title_name"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
}
