package main

import (
	"errors"

	"github.com/superman-store/internal/config"
	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/logger"
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/provider"
	"github.com/superman-store/internal/repository"
	"github.com/superman-store/internal/service"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false)
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	defer models.CloseDB(db)

	// 自动迁移
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	c := provider.NewContainer(cfg, db, nil)

	existing, err := c.ProductService.List(repository.Page{Limit: 1})
	if err != nil {
		stdLog.Fatalf("Failed to inspect products: %v", err)
	}
	if len(existing) > 0 {
		stdLog.Printf("Products already exist, skip seeding")
		return
	}

	// 添加商品
	productInputs := []service.ProductInput{
		{
			Name:        "Superman Cape",
			Price:       models.NewMoneyFromString("49.99"),
			ImageURL:    "https://superman-store.onrender.com/images/cape.jpg",
			Category:    "Apparel",
			Description: "Official red cape with the House of El crest, tear resistant and wind tested.",
			Quantity:    intPtr(100),
		},
		{
			Name:        "Kryptonite Shield Mug",
			Price:       models.NewMoneyFromString("14.50"),
			ImageURL:    "https://superman-store.onrender.com/images/mug.jpg",
			Category:    "Home",
			Description: "Ceramic mug with lead lining print. Keeps coffee hot and kryptonite out.",
			Quantity:    intPtr(250),
		},
		{
			Name:        "Fortress of Solitude Snow Globe",
			Price:       models.NewMoneyFromString("29.00"),
			ImageURL:    "https://superman-store.onrender.com/images/globe.jpg",
			Category:    "Collectibles",
			Description: "Crystal fortress replica in an arctic snow globe.",
			Quantity:    intPtr(0),
			InStock:     boolPtr(false),
		},
	}
	products := make([]*models.Product, 0, len(productInputs))
	for _, input := range productInputs {
		product, err := c.ProductService.Create(input)
		if err != nil {
			stdLog.Fatalf("Failed to create product %s: %v", input.Name, err)
		}
		stdLog.Printf("Created product: %s", product.Name)
		products = append(products, product)
	}

	// 添加顾客
	customer, err := c.CustomerService.Create(service.CustomerInput{
		FirstName:       "Clark",
		LastName:        "Kent",
		Email:           "clark@dailyplanet.com",
		Phone:           "5551234567",
		DeliveryAddress: "344 Clinton St, Apt 3B, Metropolis",
		BillingAddress:  "344 Clinton St, Apt 3B, Metropolis",
	})
	if errors.Is(err, service.ErrEmailExists) {
		stdLog.Printf("Customer already exists: clark@dailyplanet.com")
		return
	}
	if err != nil {
		stdLog.Fatalf("Failed to create customer: %v", err)
	}
	stdLog.Printf("Created customer: %s", customer.FullName)

	// 添加配送与购买记录
	delivery, err := c.DeliveryService.Create(service.DeliveryInput{
		Type:    constants.DeliveryTypeExpress,
		MinDays: intPtr(1),
		MaxDays: intPtr(3),
		Carrier: stringPtr("Daily Planet Couriers"),
	})
	if err != nil {
		stdLog.Fatalf("Failed to create delivery: %v", err)
	}

	purchase, err := c.PurchaseService.Create(service.PurchaseInput{
		CustomerID: customer.ID,
		ProductID:  products[0].ID,
		DeliveryID: &delivery.ID,
		Quantity:   2,
	})
	if err != nil {
		stdLog.Fatalf("Failed to create purchase: %v", err)
	}
	stdLog.Printf("Created purchase #%d total %s", purchase.ID, purchase.TotalAmount.String())

	if _, err := c.DeliveryService.Transition(delivery.ID, service.DeliveryTransitionInput{
		Status: constants.DeliveryStatusShipped,
		Note:   "Picked up at Metropolis hub",
	}); err != nil {
		stdLog.Printf("Failed to ship delivery: %v", err)
	}

	// 添加评论与评分
	if _, err := c.CommentService.Create(service.CommentInput{
		Content:    "Fits perfectly and survives high altitude flights.",
		CustomerID: customer.ID,
		ProductID:  products[0].ID,
	}); err != nil {
		stdLog.Printf("Failed to create comment: %v", err)
	}
	if _, err := c.RatingService.Create(service.RatingInput{
		Rating:     5,
		CustomerID: customer.ID,
		ProductID:  products[0].ID,
	}); err != nil {
		stdLog.Printf("Failed to create rating: %v", err)
	}

	stdLog.Printf("Seed completed")
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
