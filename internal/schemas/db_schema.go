// Package schemas defines the data structures
package schemas

import (
	"time"

	"github.com/google/uuid"
)

// Content types a post can have.
const (
	ContentTypeStory = "story"
	ContentTypeBlog  = "blog"
	ContentTypePhoto = "photo"
	ContentTypeEvent = "event"
)

// ContentTypes lists every accepted post content type.
var ContentTypes = []string{ContentTypeStory, ContentTypeBlog, ContentTypePhoto, ContentTypeEvent}

// Account represents a registered user in the system.
// It goes from unverified to verified exactly once; login is only possible once verified.
type Account struct {
	ID                      uuid.UUID     `json:"id"`
	Username                string        `json:"username"`
	Email                   string        `json:"email"`
	PasswordHash            string        `json:"-"`
	Avatar                  string        `json:"avatar"`
	IsVerified              bool          `json:"isVerified"`
	VerificationToken       *string       `json:"-"`
	VerificationTokenExpiry *time.Time    `json:"-"`
	Interests               []string      `json:"interests"`
	Bookmarks               []string      `json:"bookmarks"`
	Contributions           []string      `json:"contributions"`
	Badges                  []string      `json:"badges"`
	Posts                   []PostSummary `json:"posts"`
	CreatedAt               time.Time     `json:"createdAt"`
}

// PostSummary is the copy of a post kept on its author's account.
type PostSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Author is the snapshot of the post owner taken when the post was created.
// It is not updated when the account changes its username or avatar.
type Author struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// Post represents a community post.
type Post struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	ContentType string      `json:"contentType"`
	Author      Author      `json:"author"`
	CreatedAt   time.Time   `json:"createdAt"`
	Likes       int         `json:"likes"`
	LikedBy     []uuid.UUID `json:"likedBy"`
	Comments    int         `json:"comments"`
	Featured    bool        `json:"featured"`
	Images      []string    `json:"images"`
	Location    *string     `json:"location,omitempty"`
	EventDate   *time.Time  `json:"eventDate,omitempty"`
}

// OwnerID returns the id of the account that created the post.
func (p *Post) OwnerID() uuid.UUID {
	return p.Author.ID
}

// Event represents a festival or cultural event in the calendar.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OwnerID returns the id of the account that created the event.
func (e *Event) OwnerID() uuid.UUID {
	return e.CreatedBy
}
