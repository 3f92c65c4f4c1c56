package http

import (
	"log/slog"
	"os"

	"github.com/geocoder89/infohub/internal/domain/user"
	"github.com/geocoder89/infohub/internal/http/handlers"
	"github.com/geocoder89/infohub/internal/http/middlewares"
	"github.com/geocoder89/infohub/internal/observability"
	kvrepo "github.com/geocoder89/infohub/internal/repo/kv"
	"github.com/geocoder89/infohub/internal/session"
	"github.com/geocoder89/infohub/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps carries everything the router wires together. The store is the
// only required piece; nil observability bits are simply skipped.
type Deps struct {
	Store  store.KV
	Assist handlers.TextAssistant
	Prom   *observability.Prom
	Reg    *prometheus.Registry
	Ping   func() error
}

func NewRouter(log *slog.Logger, deps Deps) *gin.Engine {
	cfgEnv := os.Getenv("APP_ENV")

	if cfgEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(otelgin.Middleware("infohub"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	// wire up repositories over the shared key-value store
	usersRepo := kvrepo.NewUsersRepo(deps.Store)
	postsRepo := kvrepo.NewPostsRepo(deps.Store)
	sessions := session.NewManager(kvrepo.NewSessionRepo(deps.Store))

	sessionMw := middlewares.NewSessionMiddleware(sessions)
	r.Use(sessionMw.LoadSession())

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.Reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Reg, promhttp.HandlerOpts{})))
	}

	// Wire up the handlers
	authHandler := handlers.NewAuthHandler(usersRepo, sessions)
	postsHandler := handlers.NewPostsHandler(postsRepo)
	feedHandler := handlers.NewFeedHandler(postsRepo)

	r.POST("/auth/signup", authHandler.SignUp)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/quick-login", authHandler.QuickLogin)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/auth/me", sessionMw.RequireUser(), authHandler.Me)

	r.GET("/posts", sessionMw.RequireUser(), postsHandler.ListPosts)
	r.GET("/feed", sessionMw.RequireUser(), feedHandler.Feed)

	// only tutors mutate the board
	tutor := r.Group("/posts", sessionMw.RequireRole(user.RoleTutor))
	tutor.POST("", postsHandler.CreatePost)
	tutor.PUT("/:id", postsHandler.UpdatePost)
	tutor.DELETE("/:id", postsHandler.DeletePost)

	if deps.Assist != nil {
		assistHandler := handlers.NewAssistHandler(deps.Assist)
		r.POST("/assist/refine", assistHandler.Refine)
		r.POST("/assist/summarize", assistHandler.Summarize)
	}

	return r
}
