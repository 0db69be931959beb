package main

import (
	"log"
	"strings"
	"time"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.FailedRequestLog)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/image/fetch"})))
	}
	router.Use(utils.NoClientCache)
	// Auth-gated routes go through this wrapper
	authRouter := &auth.Router{Base: router}

	// Feeds
	router.GET("/posts", handlers.FeedCache.Handler("index"), handlers.Index)
	router.GET("/group/:slug", handlers.GroupPosts)
	router.GET("/profile/:username", handlers.Profile)
	authRouter.GET("/follow", handlers.FollowIndex)
	// Posts and comments
	router.GET("/posts/:id", handlers.PostDetail)
	authRouter.POST("/posts", handlers.PostCreate)
	authRouter.POST("/posts/:id", handlers.PostEdit)
	authRouter.POST("/posts/:id/delete", handlers.PostDelete)
	authRouter.POST("/posts/:id/comment", handlers.CommentCreate)
	// Post images
	authRouter.POST("/posts/:id/image", handlers.PostImageUpload)
	router.GET("/image/fetch", utils.ImageClientCache, handlers.ImageFetch)
	// Follow relationships
	authRouter.POST("/profile/:username/follow", handlers.ProfileFollow)
	authRouter.POST("/profile/:username/unfollow", handlers.ProfileUnfollow)
	// Accounts
	router.POST("/user/signup", handlers.UserSignup)
	router.POST("/user/login", handlers.UserLogin)
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.POST("/user/password", handlers.UserPasswordChange)
	// Administrative
	authRouter.POST("/cache/invalidate", handlers.CacheInvalidate)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
