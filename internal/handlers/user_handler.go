package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/goerrors"
	"heritage-server/internal/schemas"
	"heritage-server/internal/services"
	"heritage-server/internal/utils"
)

type UserHdl interface {
	RegisterUser(c *gin.Context)
	VerifyEmail(c *gin.Context)
	ResendVerification(c *gin.Context)
	LoginUser(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	GetBookmarks(c *gin.Context)
	AddBookmark(c *gin.Context)
	RemoveBookmark(c *gin.Context)
}

type UserHandler struct {
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	Validator      *utils.Validator
}

func NewUserHandler(authService *services.AuthService, profileService *services.ProfileService) UserHdl {
	return &UserHandler{
		AuthService:    authService,
		ProfileService: profileService,
		Validator:      utils.GetValidator(),
	}
}

var errEmailUnreachable = errors.New("email domain has no mail server")

// RegisterUser creates an unverified account and sends the verification mail. No session token is issued.
func (handler *UserHandler) RegisterUser(c *gin.Context) {
	request, ok := payload[schemas.RegistrationRequest](c)
	if !ok {
		return
	}

	if !handler.Validator.VerifyEmail(request.Email) {
		utils.WriteAndLogError(c, goerrors.BadRequest, errEmailUnreachable)
		return
	}

	account, err := handler.AuthService.Register(c, request.Username, request.Email, request.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.RegistrationDTO{
		Message: "Registration successful. Please check your email to verify your account.",
		User:    schemas.NewUserProfileDTO(account),
	}, http.StatusCreated)
}

// VerifyEmail consumes the verification token from the path and logs the account in.
func (handler *UserHandler) VerifyEmail(c *gin.Context) {
	token, account, err := handler.AuthService.Verify(c, c.Param(utils.TokenKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.AuthDTO{
		Message: "Email verified successfully.",
		Token:   token,
		User:    schemas.NewUserProfileDTO(account),
	}, http.StatusOK)
}

func (handler *UserHandler) ResendVerification(c *gin.Context) {
	request, ok := payload[schemas.ResendVerificationRequest](c)
	if !ok {
		return
	}

	if err := handler.AuthService.ResendVerification(c, request.Email); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{
		Message: "Verification email sent. Please check your inbox.",
	}, http.StatusOK)
}

func (handler *UserHandler) LoginUser(c *gin.Context) {
	request, ok := payload[schemas.LoginRequest](c)
	if !ok {
		return
	}

	token, account, err := handler.AuthService.Login(c, request.Email, request.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.AuthDTO{
		Message: "Login successful.",
		Token:   token,
		User:    schemas.NewUserProfileDTO(account),
	}, http.StatusOK)
}

func (handler *UserHandler) GetProfile(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}

	account, err := handler.ProfileService.GetProfile(c, accountId)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserProfileDTO(account), http.StatusOK)
}

func (handler *UserHandler) UpdateProfile(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.UpdateProfileRequest](c)
	if !ok {
		return
	}

	account, err := handler.ProfileService.UpdateProfile(c, accountId, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserProfileDTO(account), http.StatusOK)
}

func (handler *UserHandler) GetBookmarks(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}

	bookmarks, err := handler.ProfileService.ListBookmarks(c, accountId)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeBookmarks(c, bookmarks)
}

func (handler *UserHandler) AddBookmark(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.BookmarkRequest](c)
	if !ok {
		return
	}

	bookmarks, err := handler.ProfileService.AddBookmark(c, accountId, request.ItemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeBookmarks(c, bookmarks)
}

func (handler *UserHandler) RemoveBookmark(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}

	bookmarks, err := handler.ProfileService.RemoveBookmark(c, accountId, c.Param(utils.ItemIdKey))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeBookmarks(c, bookmarks)
}

func writeBookmarks(c *gin.Context, bookmarks []string) {
	if bookmarks == nil {
		bookmarks = []string{}
	}
	utils.WriteAndLogResponse(c, &schemas.BookmarksDTO{Bookmarks: bookmarks}, http.StatusOK)
}
