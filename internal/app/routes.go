package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/middleware"
	"github.com/sewakita/rentweb/internal/modules/admin"
	"github.com/sewakita/rentweb/internal/modules/auth"
	"github.com/sewakita/rentweb/internal/modules/web"
	"github.com/sewakita/rentweb/internal/pkg/storageurl"
	"github.com/sewakita/rentweb/internal/pkg/view"
)

func (a *App) registerRoutes(resolver *storageurl.Resolver, renderer *view.Renderer) {
	r := a.router

	webHandler := web.NewHandler(web.NewService(a.api), renderer, a.cfg.Site, a.logger)
	webHandler.RegisterRoutes(r)

	authHandler := auth.NewHandler(auth.NewService(a.api), a.sessions, renderer, a.logger)
	authHandler.RegisterRoutes(r, middleware.RedirectIfLoggedIn(a.sessions))

	adminHandler := admin.NewHandler(a.api, admin.BuildResources(a.api, resolver), a.sessions, renderer, a.logger)
	adminHandler.RegisterRoutes(r, middleware.RequireLogin(a.sessions))

	r.NoRoute(func(c *gin.Context) {
		renderer.HTML(c, http.StatusNotFound, "web/notfound.html", gin.H{"Title": "Halaman tidak ditemukan"})
	})
}
