package router

import (
	"github.com/superman-store/internal/config"
	publichandlers "github.com/superman-store/internal/http/handlers/public"
	"github.com/superman-store/internal/logger"
	"github.com/superman-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	// 集合路径同时注册带/不带结尾斜杠两种形式，不做重定向
	r.RedirectTrailingSlash = false

	h := publichandlers.New(c)
	writeRule := RateLimitRule{
		Prefix:        "write",
		WindowSeconds: cfg.RateLimit.Write.WindowSeconds,
		MaxRequests:   cfg.RateLimit.Write.MaxRequests,
		Methods:       WriteMethods,
	}

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(log))
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(RateLimitMiddleware(c.Redis, writeRule, KeyByIP))

	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)

	products := r.Group("/products")
	{
		handleCollection(products, "GET", h.ListProducts)
		handleCollection(products, "POST", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	customers := r.Group("/customers")
	{
		handleCollection(customers, "GET", h.ListCustomers)
		handleCollection(customers, "POST", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	comments := r.Group("/comments")
	{
		handleCollection(comments, "GET", h.ListComments)
		handleCollection(comments, "POST", h.CreateComment)
		comments.GET("/:id", h.GetComment)
		comments.GET("/products/:product_id", h.ListProductComments)
		comments.GET("/customers/:customer_id", h.ListCustomerComments)
	}

	ratings := r.Group("/ratings")
	{
		handleCollection(ratings, "GET", h.ListRatings)
		handleCollection(ratings, "POST", h.CreateRating)
		ratings.GET("/:id", h.GetRating)
		ratings.GET("/products/:product_id", h.ListProductRatings)
		ratings.GET("/customers/:customer_id", h.ListCustomerRatings)
	}

	purchases := r.Group("/purchases")
	{
		handleCollection(purchases, "GET", h.ListPurchases)
		handleCollection(purchases, "POST", h.CreatePurchase)
		purchases.GET("/:id", h.GetPurchase)
		purchases.GET("/customers/:customer_id", h.ListCustomerPurchases)
	}

	deliveries := r.Group("/deliveries")
	{
		handleCollection(deliveries, "GET", h.ListDeliveries)
		handleCollection(deliveries, "POST", h.CreateDelivery)
		deliveries.GET("/:id", h.GetDelivery)
		deliveries.PUT("/:id/status", h.UpdateDeliveryStatus)
	}

	r.NoRoute(h.NotFound)

	return r
}

// handleCollection 集合路径同时响应 /xxx 与 /xxx/
func handleCollection(group *gin.RouterGroup, method string, handler gin.HandlerFunc) {
	group.Handle(method, "", handler)
	group.Handle(method, "/", handler)
}
