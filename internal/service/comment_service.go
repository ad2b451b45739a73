package service

import (
	"strings"

	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// CommentService 评论业务服务
type CommentService struct {
	repo         repository.CommentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCommentService 创建评论服务
func NewCommentService(repo repository.CommentRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *CommentService {
	return &CommentService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CommentInput 创建评论输入
type CommentInput struct {
	Content    string `json:"content" validate:"required,min=3,max=1000"`
	CustomerID uint   `json:"customer_id" validate:"required"`
	ProductID  uint   `json:"product_id" validate:"required"`
}

// List 获取评论列表
func (s *CommentService) List(page repository.Page) ([]models.Comment, error) {
	return deriveComments(s.repo.List(normalizePage(page)))
}

// ListByProduct 获取商品评论；商品不存在时返回空列表
func (s *CommentService) ListByProduct(productID uint, page repository.Page) ([]models.Comment, error) {
	return deriveComments(s.repo.ListByProduct(productID, normalizePage(page)))
}

// ListByCustomer 获取顾客评论
func (s *CommentService) ListByCustomer(customerID uint, page repository.Page) ([]models.Comment, error) {
	return deriveComments(s.repo.ListByCustomer(customerID, normalizePage(page)))
}

// GetByID 获取评论详情（含评论人与商品）
func (s *CommentService) GetByID(id uint) (*models.Comment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	comment.Derive()
	return comment, nil
}

// Create 创建评论；引用的顾客、商品须存在
func (s *CommentService) Create(input CommentInput) (*models.Comment, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var created *models.Comment
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		if err := ensureCustomerExists(s.customerRepo.WithTx(tx), input.CustomerID); err != nil {
			return err
		}
		if err := ensureProductExists(s.productRepo.WithTx(tx), input.ProductID); err != nil {
			return err
		}
		repo := s.repo.WithTx(tx)
		comment := models.Comment{
			Content:    input.Content,
			CustomerID: input.CustomerID,
			ProductID:  input.ProductID,
		}
		if err := repo.Create(&comment); err != nil {
			return translateWriteError(err, nil, ErrReferenceNotFound)
		}
		reloaded, err := repo.GetByID(comment.ID)
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

func deriveComments(comments []models.Comment, err error) ([]models.Comment, error) {
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	for i := range comments {
		comments[i].Derive()
	}
	return comments, nil
}

func ensureCustomerExists(repo repository.CustomerRepository, id uint) error {
	customer, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return nil
}

func ensureProductExists(repo repository.ProductRepository, id uint) error {
	_, err := loadProduct(repo, id)
	return err
}

func loadProduct(repo repository.ProductRepository, id uint) (*models.Product, error) {
	product, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
