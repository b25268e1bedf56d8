package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
)

// ProfileService manages the profile and bookmarks of the acting account.
// List fields are overwritten as a whole, concurrent updates are last write wins.
type ProfileService struct {
	accounts repositories.AccountRepository
}

func NewProfileService(accounts repositories.AccountRepository) *ProfileService {
	return &ProfileService{accounts: accounts}
}

func accountError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return storeError(err)
}

func (s *ProfileService) GetProfile(ctx context.Context, actor uuid.UUID) (*schemas.Account, error) {
	account, err := s.accounts.FindByID(ctx, actor)
	if err != nil {
		return nil, accountError(err)
	}

	return account, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, actor uuid.UUID, req *schemas.UpdateProfileRequest) (*schemas.Account, error) {
	email := req.Email
	if email != nil {
		normalized := NormalizeEmail(*email)
		email = &normalized
	}

	account, err := s.accounts.UpdateProfile(ctx, actor, req.Username, email, req.Interests)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, accountError(err)
	}

	return account, nil
}

func (s *ProfileService) ListBookmarks(ctx context.Context, actor uuid.UUID) ([]string, error) {
	account, err := s.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	return account.Bookmarks, nil
}

// AddBookmark bookmarks itemId. Adding an existing bookmark changes nothing.
func (s *ProfileService) AddBookmark(ctx context.Context, actor uuid.UUID, itemId string) ([]string, error) {
	bookmarks, err := s.accounts.AddBookmark(ctx, actor, itemId)
	if err != nil {
		return nil, accountError(err)
	}

	return bookmarks, nil
}

func (s *ProfileService) RemoveBookmark(ctx context.Context, actor uuid.UUID, itemId string) ([]string, error) {
	bookmarks, err := s.accounts.RemoveBookmark(ctx, actor, itemId)
	if err != nil {
		return nil, accountError(err)
	}

	return bookmarks, nil
}
