package app

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/apiclient"
	"github.com/sewakita/rentweb/internal/config"
	"github.com/sewakita/rentweb/internal/middleware"
	jwtpkg "github.com/sewakita/rentweb/internal/pkg/jwt"
	pkgredis "github.com/sewakita/rentweb/internal/pkg/redis"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/pkg/view"
	"github.com/sewakita/rentweb/internal/session"
	webassets "github.com/sewakita/rentweb/web"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	api      *apiclient.Client
	sessions *session.Manager
	logger   *zap.Logger
}

// New initializes the application: config → API client → sessions → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	jwtpkg.SetSecret(cfg.Session.Secret)

	api := apiclient.New(cfg.APIBaseURL)
	resolver := storageurl.New(cfg.StorageBaseURL)

	var store session.Store
	if cfg.RedisURL != "" {
		rc, err := pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		store = session.NewRedisStore(rc)
	} else {
		logger.Info("redis not configured, sessions are in-process only")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.Session)
	renderer := view.New(cfg.Site, sessions)

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	tmpl, err := template.New("").Funcs(view.FuncMap(resolver)).ParseFS(webassets.Templates, "templates/*/*.html")
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(webassets.Static))

	app := &App{cfg: cfg, router: router, api: api, sessions: sessions, logger: logger}
	app.registerRoutes(resolver, renderer)
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
