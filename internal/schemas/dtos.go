package schemas

import (
	"time"

	"github.com/google/uuid"

	"heritage-server/internal/goerrors"
)

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see goerrors.CustomError
// NeedsVerification is set when the client should offer to resend the verification mail
type ErrorDTO struct {
	Error             goerrors.CustomError `json:"error"`
	NeedsVerification bool                 `json:"needsVerification,omitempty"`
}

// MessageDTO is a struct that represents a plain confirmation response
type MessageDTO struct {
	Message string `json:"message"`
}

// UserProfileDTO is the public projection of an account, it never carries the password hash
type UserProfileDTO struct {
	ID            uuid.UUID     `json:"id"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Avatar        string        `json:"avatar"`
	IsVerified    bool          `json:"isVerified"`
	Interests     []string      `json:"interests"`
	Bookmarks     []string      `json:"bookmarks"`
	Contributions []string      `json:"contributions"`
	Badges        []string      `json:"badges"`
	Posts         []PostSummary `json:"posts"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// NewUserProfileDTO projects an account onto its public profile.
func NewUserProfileDTO(account *Account) *UserProfileDTO {
	return &UserProfileDTO{
		ID:            account.ID,
		Username:      account.Username,
		Email:         account.Email,
		Avatar:        account.Avatar,
		IsVerified:    account.IsVerified,
		Interests:     nonNil(account.Interests),
		Bookmarks:     nonNil(account.Bookmarks),
		Contributions: nonNil(account.Contributions),
		Badges:        nonNil(account.Badges),
		Posts:         nonNilSummaries(account.Posts),
		CreatedAt:     account.CreatedAt,
	}
}

// RegistrationDTO is returned after registration, it deliberately has no token
type RegistrationDTO struct {
	Message string          `json:"message"`
	User    *UserProfileDTO `json:"user"`
}

// AuthDTO is returned by login and email verification
// Token is the session JWT
type AuthDTO struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    *UserProfileDTO `json:"user"`
}

// BookmarksDTO is a struct that represents the bookmarked heritage items of the account
type BookmarksDTO struct {
	Bookmarks []string `json:"bookmarks"`
}

// LikeDTO is a struct that represents the like state of a post after a toggle
type LikeDTO struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// PaginatedResponse is a struct that represents a paginated response
// Records is the records of the response
// Pagination is the pagination of the response
type PaginatedResponse struct {
	Records    interface{} `json:"records"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination is a struct that represents a page based pagination
// Page is the requested page, starting at 1
// Limit is the given limit of the pagination
// Total is the total records matching the query
// Pages is the number of pages
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// MetadataDTO describes the running API
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilSummaries(values []PostSummary) []PostSummary {
	if values == nil {
		return []PostSummary{}
	}
	return values
}
