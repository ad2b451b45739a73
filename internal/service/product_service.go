package service

import (
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput 创建/更新商品输入（更新为整体替换）
type ProductInput struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Price       models.Money `json:"price" validate:"required,gt=0"`
	ImageURL    string       `json:"image_url" validate:"required,max=500"`
	Category    string       `json:"category" validate:"required,max=50"`
	Description string       `json:"description" validate:"required,max=1000"`
	Quantity    *int         `json:"quantity" validate:"required,gte=0"`
	InStock     *bool        `json:"in_stock"`
}

func (input ProductInput) apply(product *models.Product) {
	product.Name = input.Name
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Category = input.Category
	product.Description = input.Description
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	product.InStock = true
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
}

// List 获取商品列表
func (s *ProductService) List(page repository.Page) ([]models.Product, error) {
	products, err := s.repo.List(normalizePage(page))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	product := models.Product{}
	input.apply(&product)
	if err := s.repo.Create(&product); err != nil {
		return nil, translateWriteError(err, nil, nil)
	}
	return &product, nil
}

// Update 整体替换商品可写字段
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var updated *models.Product
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		product, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrNotFound
		}
		input.apply(product)
		if err := repo.Update(product); err != nil {
			return translateWriteError(err, nil, nil)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除商品；存在购买记录时拒绝
func (s *ProductService) Delete(id uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		product, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrNotFound
		}
		count, err := repo.CountPurchases(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrProductInUse
		}
		return translateWriteError(repo.Delete(id), nil, ErrProductInUse)
	})
}
