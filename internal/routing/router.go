package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"heritage-server/internal/config"
	"heritage-server/internal/goerrors"
	"heritage-server/internal/handlers"
	"heritage-server/internal/managers"
	"heritage-server/internal/middleware"
	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
	"heritage-server/internal/services"
	"heritage-server/internal/utils"
)

const (
	apiName              = "Bharat Heritage"
	maxMultipartOverhead = 1 << 20
)

// Dependencies bundles the managers and repositories the routes are built from.
type Dependencies struct {
	DatabaseMgr     managers.DatabaseMgr
	JWTMgr          managers.JWTMgr
	PasswordMgr     managers.PasswordMgr
	VerificationMgr managers.VerificationMgr
	MailMgr         managers.MailMgr
	StorageMgr      managers.StorageMgr
	RateLimitMgr    managers.RateLimitMgr
	Accounts        repositories.AccountRepository
	Posts           repositories.PostRepository
	Events          repositories.EventRepository
}

func InitRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()
	// Handlers pass the gin context on as context.Context, the trace id has to be reachable through it
	router.ContextWithFallback = true
	router.MaxMultipartMemory = 3*cfg.Storage.MaxFileSize + maxMultipartOverhead

	setupCommonMiddleware(router, cfg)
	setupRoutes(router, cfg, deps)

	return router
}

func setupCommonMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recover())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", "X-Trace-Id"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, cfg *config.Config, deps *Dependencies) {
	router.GET("/", func(c *gin.Context) {
		utils.WriteAndLogResponse(c, &schemas.MetadataDTO{
			ApiVersion: cfg.Server.APIVersion,
			ApiName:    apiName,
		}, http.StatusOK)
	})

	router.GET("/health", func(c *gin.Context) {
		if err := deps.DatabaseMgr.Ping(c); err != nil {
			utils.WriteAndLogError(c, goerrors.DatabaseError, err)
			return
		}
		c.Status(http.StatusOK)
	})

	if cfg.Storage.Driver == "local" {
		router.Static(cfg.Storage.PublicPath, cfg.Storage.UploadDir)
	}

	authService := services.NewAuthService(deps.Accounts, deps.JWTMgr, deps.PasswordMgr, deps.VerificationMgr, deps.MailMgr)
	profileService := services.NewProfileService(deps.Accounts)
	eventService := services.NewEventService(deps.Events)
	communityService := services.NewCommunityService(deps.Posts, deps.Accounts, deps.StorageMgr, cfg.Storage.MaxFileSize)

	userHdl := handlers.NewUserHandler(authService, profileService)
	eventHdl := handlers.NewEventHandler(eventService)
	postHdl := handlers.NewPostHandler(communityService)

	apiRouter := router.Group("/api")
	{
		authRoutes(apiRouter.Group("/auth"), userHdl, deps.RateLimitMgr)
		userRoutes(apiRouter.Group("/user"), userHdl, eventHdl, deps.JWTMgr)
		communityRoutes(apiRouter.Group("/community"), postHdl, deps.JWTMgr)
	}
}

func authRoutes(authRouter *gin.RouterGroup, userHdl handlers.UserHdl, rateLimitMgr managers.RateLimitMgr) {
	authRouter.POST("/register", rateLimitMgr.RateLimitMiddleware("register"),
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.RegistrationRequest{} }), userHdl.RegisterUser)
	authRouter.GET("/verify-email/:"+utils.TokenKey, userHdl.VerifyEmail)
	authRouter.POST("/resend-verification", rateLimitMgr.RateLimitMiddleware("resend"),
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.ResendVerificationRequest{} }), userHdl.ResendVerification)
	authRouter.POST("/login", rateLimitMgr.RateLimitMiddleware("login"),
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.LoginRequest{} }), userHdl.LoginUser)
}

func userRoutes(userRouter *gin.RouterGroup, userHdl handlers.UserHdl, eventHdl handlers.EventHdl, jwtMgr managers.JWTMgr) {
	userRouter.Use(jwtMgr.JWTMiddleware())
	userRouter.GET("/profile", userHdl.GetProfile)
	userRouter.PUT("/profile", middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.UpdateProfileRequest{} }), userHdl.UpdateProfile)

	userRouter.GET("/bookmarks", userHdl.GetBookmarks)
	userRouter.POST("/bookmarks", middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.BookmarkRequest{} }), userHdl.AddBookmark)
	userRouter.DELETE("/bookmarks/:"+utils.ItemIdKey, userHdl.RemoveBookmark)

	userRouter.GET("/events", eventHdl.ListEvents)
	userRouter.GET("/events/:"+utils.IdKey, eventHdl.GetEvent)
	userRouter.POST("/events", middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.EventRequest{} }), eventHdl.CreateEvent)
	userRouter.PUT("/events/:"+utils.IdKey, middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.UpdateEventRequest{} }), eventHdl.UpdateEvent)
	userRouter.DELETE("/events/:"+utils.IdKey, eventHdl.DeleteEvent)
}

func communityRoutes(communityRouter *gin.RouterGroup, postHdl handlers.PostHdl, jwtMgr managers.JWTMgr) {
	// Reads are public, so these have to be registered before the guard is added to the group
	communityRouter.GET("/posts", postHdl.ListPosts)
	communityRouter.GET("/posts/featured", postHdl.GetFeaturedPosts)
	communityRouter.GET("/posts/events", postHdl.GetUpcomingEvents)
	communityRouter.GET("/posts/:"+utils.IdKey, postHdl.GetPost)

	communityRouter.Use(jwtMgr.JWTMiddleware())
	communityRouter.POST("/posts", middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.CreatePostRequest{} }), postHdl.CreatePost)
	communityRouter.PUT("/posts/:"+utils.IdKey, middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.UpdatePostRequest{} }), postHdl.UpdatePost)
	communityRouter.DELETE("/posts/:"+utils.IdKey, postHdl.DeletePost)
	communityRouter.POST("/posts/:"+utils.IdKey+"/like", postHdl.ToggleLike)
}
