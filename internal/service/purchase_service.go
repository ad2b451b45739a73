package service

import (
	"time"

	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// PurchaseService 购买记录业务服务
type PurchaseService struct {
	repo         repository.PurchaseRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	deliveryRepo repository.DeliveryRepository
}

// NewPurchaseService 创建购买记录服务
func NewPurchaseService(
	repo repository.PurchaseRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryRepository,
) *PurchaseService {
	return &PurchaseService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		deliveryRepo: deliveryRepo,
	}
}

// PurchaseInput 创建购买记录输入
// unit_price 缺省时取商品当前售价；purchase_date 缺省为当前时间
type PurchaseInput struct {
	CustomerID   uint          `json:"customer_id" validate:"required"`
	ProductID    uint          `json:"product_id" validate:"required"`
	DeliveryID   *uint         `json:"delivery_id"`
	Quantity     int           `json:"quantity" validate:"required,gt=0"`
	UnitPrice    *models.Money `json:"unit_price" validate:"omitnil,gt=0"`
	PurchaseDate *time.Time    `json:"purchase_date"`
}

// List 获取购买记录列表
func (s *PurchaseService) List(page repository.Page) ([]models.Purchase, error) {
	return derivePurchases(s.repo.List(normalizePage(page)))
}

// ListByCustomer 获取顾客购买记录
func (s *PurchaseService) ListByCustomer(customerID uint, page repository.Page) ([]models.Purchase, error) {
	return derivePurchases(s.repo.ListByCustomer(customerID, normalizePage(page)))
}

// GetByID 获取购买记录详情（含顾客、商品、配送）
func (s *PurchaseService) GetByID(id uint) (*models.Purchase, error) {
	purchase, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, ErrNotFound
	}
	purchase.Derive(nowUTC())
	return purchase, nil
}

// Create 创建购买记录；成交单价写入后不再随商品售价变化
func (s *PurchaseService) Create(input PurchaseInput) (*models.Purchase, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var created *models.Purchase
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		if err := ensureCustomerExists(s.customerRepo.WithTx(tx), input.CustomerID); err != nil {
			return err
		}
		product, err := loadProduct(s.productRepo.WithTx(tx), input.ProductID)
		if err != nil {
			return err
		}
		if input.DeliveryID != nil {
			delivery, err := s.deliveryRepo.WithTx(tx).GetByID(*input.DeliveryID)
			if err != nil {
				return err
			}
			if delivery == nil {
				return ErrDeliveryNotFound
			}
		}

		unitPrice := product.Price
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}
		purchaseDate := nowUTC()
		if input.PurchaseDate != nil {
			purchaseDate = input.PurchaseDate.UTC()
		}

		repo := s.repo.WithTx(tx)
		purchase := models.Purchase{
			Quantity:     input.Quantity,
			UnitPrice:    unitPrice,
			CustomerID:   input.CustomerID,
			ProductID:    input.ProductID,
			DeliveryID:   input.DeliveryID,
			PurchaseDate: purchaseDate,
		}
		if err := repo.Create(&purchase); err != nil {
			return translateWriteError(err, nil, ErrReferenceNotFound)
		}
		reloaded, err := repo.GetByID(purchase.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.Derive(nowUTC())
	return created, nil
}

func derivePurchases(purchases []models.Purchase, err error) ([]models.Purchase, error) {
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	now := nowUTC()
	for i := range purchases {
		purchases[i].Derive(now)
	}
	return purchases, nil
}
