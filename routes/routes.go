package routes

import (
	"net/http"

	"mvs/auth"
	"mvs/cart"
	"mvs/catalog"
	"mvs/invoice"
	"mvs/middleware"
	"mvs/notify"
	"mvs/orders"
	"mvs/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/change-password", rl.Limit(middleware.Authenticate(auth.ChangePassword)))
	router.GET("/api/auth/session", middleware.Authenticate(auth.Session))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.POST("/api/products", middleware.Authenticate(catalog.CreateProduct))
	router.PUT("/api/products/:productid", middleware.Authenticate(catalog.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.Authenticate(catalog.DeleteProduct))
	router.POST("/api/products/:productid/image", middleware.Authenticate(catalog.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", h.GetCart)
	router.GET("/api/cart/shipping", h.GetShippingQuote)
	router.POST("/api/cart/items", h.AddItem)
	router.PUT("/api/cart/items/:productid", h.UpdateQuantity)
	router.DELETE("/api/cart/items/:productid", h.RemoveItem)
	router.DELETE("/api/cart", h.ClearCart)
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(h.Checkout))
	router.GET("/api/orders", middleware.Authenticate(h.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(h.GetOrder))
	router.PATCH("/api/orders/:orderid/status", middleware.Authenticate(h.UpdateStatus))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(invoice.PrintInvoice))
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/api/notify/orders", middleware.Authenticate(notify.WebSocketHandler(hub)))
}
