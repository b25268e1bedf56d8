// Package schemas defines the request structures for various operations in the application.
package schemas

import "mime/multipart"

// RegistrationRequest is a struct that represents a registration request
// Username is required and must be less than 30 characters
// Email is required and must be a valid email
// Password is required, between 8 and 72 characters (bcrypt limit)
type RegistrationRequest struct {
	Username string `json:"username" validate:"required,max=30,username_validation" sanitize:"strict"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72,password_validation"`
}

// LoginRequest is a struct that represents a login request
// Both fields are only checked for presence, the credentials themselves are checked by the auth service
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// ResendVerificationRequest is a struct that represents a request to resend the verification mail
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// UpdateProfileRequest is a struct that represents a profile update, absent fields are left untouched
type UpdateProfileRequest struct {
	Username  *string  `json:"username" validate:"omitempty,max=30,username_validation" sanitize:"strict"`
	Email     *string  `json:"email" validate:"omitempty,email,max=254"`
	Interests []string `json:"interests" validate:"omitempty,max=50,dive,max=50" sanitize:"strict"`
}

// BookmarkRequest is a struct that represents a request to bookmark a heritage item
type BookmarkRequest struct {
	ItemID string `json:"itemId" validate:"required,max=128" sanitize:"strict"`
}

// EventRequest is a struct that represents an event creation request
// Date accepts RFC 3339 timestamps or plain dates (2006-01-02)
type EventRequest struct {
	Name        string `json:"name" validate:"required,max=120" sanitize:"strict"`
	Date        string `json:"date" validate:"required,date_validation"`
	Location    string `json:"location" validate:"max=200" sanitize:"strict"`
	Description string `json:"description" validate:"max=2000" sanitize:"strict"`
	Category    string `json:"category" validate:"max=50" sanitize:"strict"`
}

// UpdateEventRequest is a struct that represents an event update, absent fields are left untouched
type UpdateEventRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120" sanitize:"strict"`
	Date        *string `json:"date" validate:"omitempty,date_validation"`
	Location    *string `json:"location" validate:"omitempty,max=200" sanitize:"strict"`
	Description *string `json:"description" validate:"omitempty,max=2000" sanitize:"strict"`
	Category    *string `json:"category" validate:"omitempty,max=50" sanitize:"strict"`
}

// CreatePostRequest is a struct that represents a multipart post creation request
// Images are optional, at most three image files are accepted
type CreatePostRequest struct {
	Title       string                  `form:"title" validate:"required,max=200" sanitize:"strict"`
	Content     string                  `form:"content" validate:"required,max=20000" sanitize:"strict"`
	ContentType string                  `form:"contentType" validate:"required,oneof=story blog photo event"`
	Location    string                  `form:"location" validate:"max=200" sanitize:"strict"`
	EventDate   string                  `form:"eventDate" validate:"omitempty,date_validation"`
	Images      []*multipart.FileHeader `form:"images" validate:"max=3"`
}

// UpdatePostRequest is a struct that represents a multipart post update request
// Location and EventDate can be cleared by sending them empty
type UpdatePostRequest struct {
	Title       *string                 `form:"title" validate:"omitempty,max=200" sanitize:"strict"`
	Content     *string                 `form:"content" validate:"omitempty,max=20000" sanitize:"strict"`
	ContentType *string                 `form:"contentType" validate:"omitempty,oneof=story blog photo event"`
	Location    *string                 `form:"location" validate:"omitempty,max=200" sanitize:"strict"`
	EventDate   *string                 `form:"eventDate" validate:"omitempty,date_validation"`
	Images      []*multipart.FileHeader `form:"images" validate:"max=3"`
}
