package service

import (
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// RatingService 评分业务服务
type RatingService struct {
	repo         repository.RatingRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewRatingService 创建评分服务
func NewRatingService(repo repository.RatingRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *RatingService {
	return &RatingService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// RatingInput 创建评分输入
type RatingInput struct {
	Rating     int  `json:"rating" validate:"required,min=1,max=5"`
	CustomerID uint `json:"customer_id" validate:"required"`
	ProductID  uint `json:"product_id" validate:"required"`
}

// List 获取评分列表
func (s *RatingService) List(page repository.Page) ([]models.Rating, error) {
	return deriveRatings(s.repo.List(normalizePage(page)))
}

// ListByProduct 获取商品评分
func (s *RatingService) ListByProduct(productID uint, page repository.Page) ([]models.Rating, error) {
	return deriveRatings(s.repo.ListByProduct(productID, normalizePage(page)))
}

// ListByCustomer 获取顾客评分
func (s *RatingService) ListByCustomer(customerID uint, page repository.Page) ([]models.Rating, error) {
	return deriveRatings(s.repo.ListByCustomer(customerID, normalizePage(page)))
}

// GetByID 获取评分详情
func (s *RatingService) GetByID(id uint) (*models.Rating, error) {
	rating, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrNotFound
	}
	rating.Derive()
	return rating, nil
}

// Create 创建评分；每位顾客对同一商品只能评分一次
func (s *RatingService) Create(input RatingInput) (*models.Rating, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var created *models.Rating
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		if err := ensureCustomerExists(s.customerRepo.WithTx(tx), input.CustomerID); err != nil {
			return err
		}
		if err := ensureProductExists(s.productRepo.WithTx(tx), input.ProductID); err != nil {
			return err
		}
		repo := s.repo.WithTx(tx)
		existing, err := repo.GetByCustomerAndProduct(input.CustomerID, input.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrRatingExists
		}
		rating := models.Rating{
			Rating:     input.Rating,
			CustomerID: input.CustomerID,
			ProductID:  input.ProductID,
		}
		if err := repo.Create(&rating); err != nil {
			return translateWriteError(err, ErrRatingExists, ErrReferenceNotFound)
		}
		reloaded, err := repo.GetByID(rating.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.Derive()
	return created, nil
}

func deriveRatings(ratings []models.Rating, err error) ([]models.Rating, error) {
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}
	for i := range ratings {
		ratings[i].Derive()
	}
	return ratings, nil
}
