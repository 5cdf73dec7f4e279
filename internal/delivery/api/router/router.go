// Package router contains routing setup for the API delivery.
package router

import (
	"booking/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and registry served by the router, injected by Fx.
type RouterParams struct {
	fx.In

	PhoneHandler *handler.PhoneHandler
	Registry     *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	phoneHandler *handler.PhoneHandler
	registry     *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		phoneHandler: params.PhoneHandler,
		registry:     params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	api := e.Group(handler.APIPrefix)

	phonesGroup := api.Group("/phones")
	{
		phonesGroup.POST("", r.phoneHandler.CreatePhone)
		phonesGroup.GET("", r.phoneHandler.ListPhones)
		phonesGroup.GET("/:id", r.phoneHandler.GetPhone)
		phonesGroup.PUT("/:id", r.phoneHandler.UpdatePhone)
		phonesGroup.PATCH("/:id", r.phoneHandler.PartialUpdatePhone)
		phonesGroup.DELETE("/:id", r.phoneHandler.DeletePhone)
	}
}
