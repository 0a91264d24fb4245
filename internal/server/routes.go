package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Review   *handler.ReviewHandler
	Purchase *handler.PurchaseHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, hs Handlers) {
	api := e.Group("/api")

	//書き込み系に付けるJWT検証
	authRequired := middleware.AuthJWT(cfg)

	hs.Auth.RegisterRoutes(api)
	hs.Category.RegisterRoutes(api, authRequired)
	hs.Product.RegisterRoutes(api, authRequired)
	hs.Review.RegisterRoutes(api, authRequired)
	hs.Purchase.RegisterRoutes(api, authRequired)
}
