package service

import (
	"strings"

	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// CustomerService 顾客业务服务
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService 创建顾客服务
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CustomerInput 创建/更新顾客输入
type CustomerInput struct {
	FirstName       string `json:"firstname" validate:"required,min=2,max=50"`
	LastName        string `json:"lastname" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,max=255,emailshape"`
	Phone           string `json:"phone" validate:"required,min=10,max=20"`
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	BillingAddress  string `json:"billing_address" validate:"required,max=500"`
}

func (input *CustomerInput) normalize() {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
}

func (input CustomerInput) apply(customer *models.Customer) {
	customer.Firstname = input.FirstName
	customer.Lastname = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.DeliveryAddress = input.DeliveryAddress
	customer.BillingAddress = input.BillingAddress
}

// List 获取顾客列表
func (s *CustomerService) List(page repository.Page) ([]models.Customer, error) {
	customers, err := s.repo.List(normalizePage(page))
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	for i := range customers {
		customers[i].Derive()
	}
	return customers, nil
}

// GetByID 获取顾客详情
func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	customer.Derive()
	return customer, nil
}

// Create 创建顾客；邮箱全局唯一
func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	customer := models.Customer{}
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		count, err := repo.CountByEmail(input.Email, nil)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailExists
		}
		input.apply(&customer)
		return translateWriteError(repo.Create(&customer), ErrEmailExists, nil)
	})
	if err != nil {
		return nil, err
	}
	customer.Derive()
	return &customer, nil
}

// Update 整体替换顾客资料
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var updated *models.Customer
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		customer, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrNotFound
		}
		count, err := repo.CountByEmail(input.Email, &id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailExists
		}
		input.apply(customer)
		if err := repo.Update(customer); err != nil {
			return translateWriteError(err, ErrEmailExists, nil)
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated.Derive()
	return updated, nil
}

// Delete 删除顾客；其评论、评分、购买记录级联删除
func (s *CustomerService) Delete(id uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		customer, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrNotFound
		}
		return translateWriteError(repo.Delete(id), nil, ErrCustomerInUse)
	})
}
