// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"refuge/internal/delivery/http/middleware"
	"refuge/internal/delivery/http/router/handler"
	"refuge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	CatalogHandler   *handler.CatalogHandler
	AdoptionHandler  *handler.AdoptionHandler
	FavoritesHandler *handler.FavoritesHandler
	MediaHandler     *handler.MediaHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session        *handler.SessionHandler
	catalog        *handler.CatalogHandler
	adoption       *handler.AdoptionHandler
	favorites      *handler.FavoritesHandler
	media          *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:        params.SessionHandler,
		catalog:        params.CatalogHandler,
		adoption:       params.AdoptionHandler,
		favorites:      params.FavoritesHandler,
		media:          params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Routes ending in /stream answer with server-sent events.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.session.Register)
		authGroup.POST("/login", r.session.Login)
		authGroup.POST("/logout", r.session.Logout)
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("/profile", r.session.GetProfile)
		sessionGroup.GET("/profile/stream", r.session.StreamProfile)
		sessionGroup.GET("/principal/stream", r.session.StreamPrincipal)
		sessionGroup.GET("/is-shelter/stream", r.session.StreamIsShelter)
		sessionGroup.GET("/is-user/stream", r.session.StreamIsUser)
	}

	// Public catalog
	{
		e.GET("/animals/stream", r.catalog.StreamAvailable)
		e.GET("/animals/nearby/stream", r.catalog.StreamNearby)
		e.GET("/animals/:id/stream", r.catalog.StreamAnimal)
		e.GET("/animals/:id/qrcode", r.catalog.ShareCode)
		e.GET("/shelters/:id/animals/stream", r.catalog.StreamByShelter)
		e.GET("/shelters/:id/requests/stream", r.adoption.StreamByShelter)
		e.GET("/users/:id/requests/stream", r.adoption.StreamByUser)
	}

	// Shelter routes that require authentication and the "refuge" role
	shelterGroup := e.Group("/shelter")
	shelterGroup.Use(r.authMiddleware.Authenticate)
	shelterGroup.Use(r.authMiddleware.RequireRole(entity.RoleRefuge))
	{
		shelterGroup.GET("/animals/stream", r.catalog.StreamMine)
		shelterGroup.POST("/animals", r.catalog.Create)
		shelterGroup.PATCH("/animals/:id", r.catalog.Update)
		shelterGroup.POST("/animals/:id/availability", r.catalog.ToggleAvailability)
		shelterGroup.DELETE("/animals/:id", r.catalog.Delete)
		shelterGroup.GET("/requests/stream", r.adoption.StreamReceived)
	}

	adoptionGroup := e.Group("/adoptions")
	adoptionGroup.Use(r.authMiddleware.Authenticate)
	{
		adoptionGroup.POST("", r.adoption.Submit)
		adoptionGroup.GET("/mine/stream", r.adoption.StreamMine)
	}

	favoritesGroup := e.Group("/favorites")
	{
		favoritesGroup.GET("", r.favorites.List)
		favoritesGroup.GET("/animals/stream", r.catalog.StreamFavorites)
		favoritesGroup.GET("/:id", r.favorites.Contains)
		favoritesGroup.PUT("/:id", r.favorites.Add)
		favoritesGroup.DELETE("/:id", r.favorites.Remove)
		favoritesGroup.POST("/:id/toggle", r.favorites.Toggle)
	}

	e.POST("/media/encode", r.media.Encode)
}
