package provider

import (
	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/redisclient"
	"github.com/superman-store/internal/repository"
	"github.com/superman-store/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redisclient.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	CommentRepo  repository.CommentRepository
	RatingRepo   repository.RatingRepository
	DeliveryRepo repository.DeliveryRepository
	PurchaseRepo repository.PurchaseRepository

	// Services
	ProductService  *service.ProductService
	CustomerService *service.CustomerService
	CommentService  *service.CommentService
	RatingService   *service.RatingService
	DeliveryService *service.DeliveryService
	PurchaseService *service.PurchaseService
}

// NewContainer 初始化容器，redis 可以为 nil
func NewContainer(cfg *config.Config, db *gorm.DB, redis *redisclient.Client) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
		Redis:  redis,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewProductRepository(c.DB)
	c.CustomerRepo = repository.NewCustomerRepository(c.DB)
	c.CommentRepo = repository.NewCommentRepository(c.DB)
	c.RatingRepo = repository.NewRatingRepository(c.DB)
	c.DeliveryRepo = repository.NewDeliveryRepository(c.DB)
	c.PurchaseRepo = repository.NewPurchaseRepository(c.DB)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.CustomerRepo, c.ProductRepo)
	c.RatingService = service.NewRatingService(c.RatingRepo, c.CustomerRepo, c.ProductRepo)
	c.DeliveryService = service.NewDeliveryService(c.DeliveryRepo, c.PurchaseRepo)
	c.PurchaseService = service.NewPurchaseService(c.PurchaseRepo, c.CustomerRepo, c.ProductRepo, c.DeliveryRepo)
}
