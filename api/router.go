// Package api contains all endpoints available
package api

import (
	"context"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/Tanz2024/Portfolio/auth"
	"github.com/Tanz2024/Portfolio/db"
	"github.com/Tanz2024/Portfolio/middleware"
	"github.com/Tanz2024/Portfolio/model"
	"github.com/Tanz2024/Portfolio/security"
	"github.com/Tanz2024/Portfolio/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Auth   *auth.Manager
	Store  storage.Store
	Argon  *security.ArgonHash

	blogs        *resource[model.Blog]
	projects     *resource[model.Project]
	achievements *resource[model.Achievement]
	testimonials *resource[model.Testimonial]
}

func NewRouter() (*API, error) {
	a := &API{
		Auth:  auth.NewManager(viper.GetString("jwt.secret")),
		Argon: security.New(),
	}

	gdb, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = gdb

	switch viper.GetString("storage.type") {
	case "s3":
		st, err := storage.NewS3(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage, %w", err)
		}
		a.Store = st
	default:
		st, err := storage.NewLocal(viper.GetString("storage.upload_dir"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage, %w", err)
		}
		a.Store = st
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.allowed_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	a.blogs = blogResource(a)
	a.projects = projectResource(a)
	a.achievements = achievementResource(a)
	a.testimonials = testimonialResource(a)

	admin := middleware.RequireAdmin(a.Auth)
	limit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Enabled:           viper.GetBool("ratelimit.enabled"),
		RequestsPerSecond: viper.GetInt("ratelimit.rps"),
		Burst:             viper.GetInt("ratelimit.burst"),
	})
	jsonBody := middleware.BodySizeLimiter(1 << 20)
	uploadBody := middleware.BodySizeLimiter(viper.GetInt64("upload.max_size"))

	cacheStore := persist.NewMemoryStore(time.Minute)
	cacheFor := func(sec int) gin.HandlerFunc {
		return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
	}

	// GET / and /api/health	-> Liveness probes
	router.GET("/", a.Root)
	router.GET("/api/health", a.Health)

	// GET /authenticate		-> Role probe; no cookie means viewer, not an error
	router.GET("/authenticate", a.Authenticate)

	// POST /login/admin		-> Exact-match credential check, sets the token cookie
	// POST /login/user		-> Anonymous viewer token, no password
	router.POST("/login/admin", jsonBody, a.LoginAdmin)
	router.POST("/login/user", jsonBody, a.LoginUser)

	// GET /uploads/*		-> Serves previously uploaded files
	router.GET("/uploads/*filepath", a.ServeUpload)

	main := router.Group("/api")

	blogs := main.Group("/blogs")
	{
		blogs.GET("", a.blogs.listPublic)
		blogs.POST("", admin, uploadBody, a.blogs.create)
		blogs.PUT("/:id", admin, jsonBody, a.blogs.update)
		blogs.DELETE("/:id", admin, a.blogs.delete)
	}
	main.GET("/admin/blogs", admin, a.blogs.listAll)

	projects := main.Group("/projects")
	{
		projects.GET("", a.projects.listAll)
		projects.POST("", admin, uploadBody, a.projects.create)
		projects.PUT("/:id", admin, uploadBody, a.projects.update)
		projects.DELETE("/:id", admin, a.projects.delete)
	}

	achievements := main.Group("/achievements")
	{
		achievements.GET("", a.achievements.listAll)
		achievements.POST("", admin, uploadBody, a.achievements.create)
		achievements.PUT("/:id", admin, uploadBody, a.achievements.update)
		achievements.DELETE("/:id", admin, a.achievements.delete)

		// Reactions are public and deliberately not deduplicated per caller
		achievements.POST("/:id/react", limit, jsonBody, a.ReactAchievement)
	}

	testimonials := main.Group("/testimonials")
	{
		testimonials.GET("", a.testimonials.listAll)
		testimonials.POST("", limit, jsonBody, a.testimonials.create)
		testimonials.DELETE("/:id", admin, a.testimonials.delete)
	}

	main.POST("/contact", limit, jsonBody, a.ContactCreate)

	main.POST("/resume", admin, uploadBody, a.UploadResume)
	main.GET("/resume/download", a.DownloadResume)

	main.POST("/profile-image", admin, uploadBody, a.UploadProfileImage)
	main.GET("/public/profile-image", cacheFor(30), a.PublicProfileImage)

	main.GET("/public/profile", cacheFor(30), a.PublicProfile)
	main.GET("/user/profile", admin, a.UserProfile)
	main.PUT("/user/profile", admin, jsonBody, a.UpdateProfile)

	return a, nil
}

// Close releases the database handle. Call on shutdown.
func (a *API) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
