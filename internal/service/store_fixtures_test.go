package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

type storeServices struct {
	db        *gorm.DB
	products  *ProductService
	customers *CustomerService
	comments  *CommentService
	ratings   *RatingService
	purchases *PurchaseService
	delivery  *DeliveryService
}

func setupStoreServices(t *testing.T) *storeServices {
	t.Helper()
	dsn := fmt.Sprintf("file:store_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, false)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		_ = models.CloseDB(db)
	})

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	return &storeServices{
		db:        db,
		products:  NewProductService(productRepo),
		customers: NewCustomerService(customerRepo),
		comments:  NewCommentService(commentRepo, customerRepo, productRepo),
		ratings:   NewRatingService(ratingRepo, customerRepo, productRepo),
		purchases: NewPurchaseService(purchaseRepo, customerRepo, productRepo, deliveryRepo),
		delivery:  NewDeliveryService(deliveryRepo, purchaseRepo),
	}
}

func intPtr(v int) *int {
	return &v
}

func moneyPtr(v string) *models.Money {
	m := models.NewMoneyFromString(v)
	return &m
}

func uintPtr(v uint) *uint {
	return &v
}

func capeInput() ProductInput {
	return ProductInput{
		Name:        "Cape",
		Price:       models.NewMoneyFromString("49.99"),
		ImageURL:    "https://example.com/cape.png",
		Category:    "Clothing",
		Description: "Red cape, heat resistant",
		Quantity:    intPtr(10),
	}
}

func clarkKentInput() CustomerInput {
	return CustomerInput{
		FirstName:       "Clark",
		LastName:        "Kent",
		Email:           "clark@dailyplanet.com",
		Phone:           "5551234567",
		DeliveryAddress: "344 Clinton St, Metropolis",
		BillingAddress:  "344 Clinton St, Metropolis",
	}
}

func expressInput() DeliveryInput {
	return DeliveryInput{
		Type:    constants.DeliveryTypeExpress,
		MinDays: intPtr(1),
		MaxDays: intPtr(3),
	}
}

func mustCreateProduct(t *testing.T, s *storeServices, input ProductInput) *models.Product {
	t.Helper()
	product, err := s.products.Create(input)
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func mustCreateCustomer(t *testing.T, s *storeServices, input CustomerInput) *models.Customer {
	t.Helper()
	customer, err := s.customers.Create(input)
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return customer
}

func mustCreateDelivery(t *testing.T, s *storeServices, input DeliveryInput) *models.Delivery {
	t.Helper()
	delivery, err := s.delivery.Create(input)
	if err != nil {
		t.Fatalf("create delivery failed: %v", err)
	}
	return delivery
}

func fieldNames(err error) []string {
	verr, ok := err.(*ValidationError)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func hasField(err error, field string) bool {
	for _, name := range fieldNames(err) {
		if name == field {
			return true
		}
	}
	return false
}
