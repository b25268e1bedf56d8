package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/schemas"
	"heritage-server/internal/services"
	"heritage-server/internal/utils"
)

type PostHdl interface {
	ListPosts(c *gin.Context)
	GetFeaturedPosts(c *gin.Context)
	GetUpcomingEvents(c *gin.Context)
	GetPost(c *gin.Context)
	CreatePost(c *gin.Context)
	UpdatePost(c *gin.Context)
	DeletePost(c *gin.Context)
	ToggleLike(c *gin.Context)
}

type PostHandler struct {
	CommunityService *services.CommunityService
}

func NewPostHandler(communityService *services.CommunityService) PostHdl {
	return &PostHandler{
		CommunityService: communityService,
	}
}

// ListPosts returns the posts page by page, optionally filtered by content type.
func (handler *PostHandler) ListPosts(c *gin.Context) {
	page, limit := utils.ParsePaginationParams(c)
	contentType := c.Query(utils.TypeParamKey)

	posts, total, err := handler.CommunityService.ListPosts(c, contentType, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.PaginatedResponse{
		Records:    nonNilPosts(posts),
		Pagination: utils.NewPagination(page, limit, total),
	}, http.StatusOK)
}

func (handler *PostHandler) GetFeaturedPosts(c *gin.Context) {
	posts, err := handler.CommunityService.FeaturedPosts(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, nonNilPosts(posts), http.StatusOK)
}

func (handler *PostHandler) GetUpcomingEvents(c *gin.Context) {
	posts, err := handler.CommunityService.UpcomingEvents(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, nonNilPosts(posts), http.StatusOK)
}

func (handler *PostHandler) GetPost(c *gin.Context) {
	id, ok := resourceId(c)
	if !ok {
		return
	}

	post, err := handler.CommunityService.GetPost(c, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, post, http.StatusOK)
}

// CreatePost stores the multipart images and creates the post with the caller as author.
func (handler *PostHandler) CreatePost(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.CreatePostRequest](c)
	if !ok {
		return
	}

	post, err := handler.CommunityService.CreatePost(c, accountId, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, post, http.StatusCreated)
}

func (handler *PostHandler) UpdatePost(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	id, ok := resourceId(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.UpdatePostRequest](c)
	if !ok {
		return
	}

	post, err := handler.CommunityService.UpdatePost(c, accountId, id, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, post, http.StatusOK)
}

func (handler *PostHandler) DeletePost(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	id, ok := resourceId(c)
	if !ok {
		return
	}

	if err := handler.CommunityService.DeletePost(c, accountId, id); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Message: "Post removed"}, http.StatusOK)
}

// ToggleLike likes the post or takes the like back if the caller already liked it.
func (handler *PostHandler) ToggleLike(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	id, ok := resourceId(c)
	if !ok {
		return
	}

	likes, liked, err := handler.CommunityService.ToggleLike(c, accountId, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.LikeDTO{Likes: likes, Liked: liked}, http.StatusOK)
}

func nonNilPosts(posts []*schemas.Post) []*schemas.Post {
	if posts == nil {
		return []*schemas.Post{}
	}
	return posts
}
