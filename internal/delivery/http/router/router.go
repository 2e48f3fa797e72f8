// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopdir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler *handler.ShopHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler *handler.ShopHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler: params.ShopHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Shop resource routes
	shopGroup := e.Group("/shops")
	{
		shopGroup.GET("", r.shopHandler.ListShops)
		shopGroup.POST("", r.shopHandler.CreateShop)
		shopGroup.GET("/:id", r.shopHandler.GetShop)
		shopGroup.PUT("/:id", r.shopHandler.UpdateShop)
		shopGroup.DELETE("/:id", r.shopHandler.DeleteShop)
		shopGroup.GET("/:id/qrcode", r.shopHandler.GetShopQR)
	}
}
