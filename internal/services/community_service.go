package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"heritage-server/internal/managers"
	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
	"heritage-server/internal/utils"
)

const (
	maxImages        = 3
	highlightsLimit  = 5
	imageContentType = "image/"
)

// CommunityService manages community posts. Posts carry a snapshot of their author taken at creation.
type CommunityService struct {
	posts       repositories.PostRepository
	accounts    repositories.AccountRepository
	storage     managers.StorageMgr
	maxFileSize int64
	now         func() time.Time
}

func NewCommunityService(posts repositories.PostRepository, accounts repositories.AccountRepository,
	storage managers.StorageMgr, maxFileSize int64) *CommunityService {
	return &CommunityService{
		posts:       posts,
		accounts:    accounts,
		storage:     storage,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// ListPosts returns a page of posts, newest first. An empty contentType lists all posts.
func (s *CommunityService) ListPosts(ctx context.Context, contentType string, page, limit int) ([]*schemas.Post, int, error) {
	if contentType != "" && !slices.Contains(schemas.ContentTypes, contentType) {
		return nil, 0, ErrValidation
	}

	posts, total, err := s.posts.List(ctx, contentType, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, storeError(err)
	}

	return posts, total, nil
}

func (s *CommunityService) FeaturedPosts(ctx context.Context) ([]*schemas.Post, error) {
	posts, err := s.posts.Featured(ctx, highlightsLimit)
	if err != nil {
		return nil, storeError(err)
	}

	return posts, nil
}

func (s *CommunityService) UpcomingEvents(ctx context.Context) ([]*schemas.Post, error) {
	posts, err := s.posts.UpcomingEvents(ctx, s.now().UTC(), highlightsLimit)
	if err != nil {
		return nil, storeError(err)
	}

	return posts, nil
}

func (s *CommunityService) GetPost(ctx context.Context, id uuid.UUID) (*schemas.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, resourceError(err)
	}

	return post, nil
}

// CreatePost stores a new post of actor together with its uploaded images.
func (s *CommunityService) CreatePost(ctx context.Context, actor uuid.UUID, req *schemas.CreatePostRequest) (*schemas.Post, error) {
	if err := s.validateImages(req.Images); err != nil {
		return nil, err
	}

	eventDate, err := optionalDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, actor)
	if err != nil {
		return nil, accountError(err)
	}

	images, err := s.saveImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	post := &schemas.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		ContentType: req.ContentType,
		Author: schemas.Author{
			ID:     account.ID,
			Name:   account.Username,
			Avatar: account.Avatar,
		},
		CreatedAt: s.now().UTC(),
		LikedBy:   []uuid.UUID{},
		Images:    images,
		Location:  optionalString(req.Location),
		EventDate: eventDate,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.discardImages(ctx, images)
		return nil, storeError(err)
	}
	utils.LogMessageWithFields(ctx, "info", "Created post "+post.ID.String())

	return post, nil
}

// UpdatePost applies the given fields if actor created the post. New images are appended.
func (s *CommunityService) UpdatePost(ctx context.Context, actor, id uuid.UUID, req *schemas.UpdatePostRequest) (*schemas.Post, error) {
	post, err := CheckOwnership(ctx, s.posts.FindByID, id, actor)
	if err != nil {
		return nil, err
	}

	if err := s.validateImages(req.Images); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ContentType != nil {
		post.ContentType = *req.ContentType
	}
	if req.Location != nil {
		post.Location = optionalString(*req.Location)
	}
	if req.EventDate != nil {
		post.EventDate, err = optionalDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
	}

	images, err := s.saveImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}
	post.Images = append(post.Images, images...)

	if err := s.posts.Update(ctx, post); err != nil {
		s.discardImages(ctx, images)
		return nil, resourceError(err)
	}

	return post, nil
}

func (s *CommunityService) DeletePost(ctx context.Context, actor, id uuid.UUID) error {
	post, err := CheckOwnership(ctx, s.posts.FindByID, id, actor)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return resourceError(err)
	}

	return nil
}

// ToggleLike likes the post for actor, or removes the like if there already is one.
func (s *CommunityService) ToggleLike(ctx context.Context, actor, id uuid.UUID) (int, bool, error) {
	likes, liked, err := s.posts.ToggleLike(ctx, id, actor)
	if err != nil {
		return 0, false, resourceError(err)
	}

	return likes, liked, nil
}

func (s *CommunityService) validateImages(images []*multipart.FileHeader) error {
	if len(images) > maxImages {
		return ErrInvalidUpload
	}

	for _, image := range images {
		if image.Size > s.maxFileSize || !strings.HasPrefix(image.Header.Get("Content-Type"), imageContentType) {
			return ErrInvalidUpload
		}
	}

	return nil
}

func (s *CommunityService) saveImages(ctx context.Context, images []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.saveImage(ctx, image)
		if err != nil {
			s.discardImages(ctx, urls)
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// discardImages removes stored images that no post refers to. Failures are only logged.
func (s *CommunityService) discardImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.storage.Remove(ctx, url); err != nil {
			utils.LogMessageWithFieldsAndError(ctx, "warn", "Orphaned upload "+url+" could not be removed", err)
		}
	}
}

func (s *CommunityService) saveImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	file, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	url, err := s.storage.Save(ctx, image.Filename, image.Header.Get("Content-Type"), file, image.Size)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return url, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := utils.ParseDate(value)
	if err != nil {
		return nil, ErrValidation
	}
	return &date, nil
}
