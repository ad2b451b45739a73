package service

import (
	"strings"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/models"
	"github.com/superman-store/internal/repository"

	"gorm.io/gorm"
)

// DeliveryService 配送业务服务
type DeliveryService struct {
	repo         repository.DeliveryRepository
	purchaseRepo repository.PurchaseRepository
}

// NewDeliveryService 创建配送服务
func NewDeliveryService(repo repository.DeliveryRepository, purchaseRepo repository.PurchaseRepository) *DeliveryService {
	return &DeliveryService{repo: repo, purchaseRepo: purchaseRepo}
}

// DeliveryInput 创建配送输入，状态固定从 Processing 开始
type DeliveryInput struct {
	Type           string  `json:"type" validate:"required,delivery_type"`
	MinDays        *int    `json:"min_days" validate:"required,gte=0,max=3650"`
	MaxDays        *int    `json:"max_days" validate:"required,gte=0,max=3650"`
	TrackingNumber *string `json:"tracking_number" validate:"omitempty,max=100"`
	Carrier        *string `json:"carrier" validate:"omitempty,max=100"`
	Notes          *string `json:"notes"`
}

// DeliveryTransitionInput 状态流转输入
type DeliveryTransitionInput struct {
	Status string `json:"status" validate:"required,delivery_status"`
	Note   string `json:"note" validate:"max=500"`
}

// List 获取配送列表
func (s *DeliveryService) List(page repository.Page) ([]models.Delivery, error) {
	deliveries, err := s.repo.List(normalizePage(page))
	if err != nil {
		return nil, err
	}
	if deliveries == nil {
		deliveries = []models.Delivery{}
	}
	now := nowUTC()
	for i := range deliveries {
		deliveries[i].Derive(now)
	}
	return deliveries, nil
}

// GetByID 获取配送详情（含关联购买记录）
func (s *DeliveryService) GetByID(id uint) (*models.Delivery, error) {
	delivery, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrNotFound
	}
	purchases, err := s.purchaseRepo.ListByDelivery(id)
	if err != nil {
		return nil, err
	}
	delivery.Purchases = purchases
	delivery.Derive(nowUTC())
	return delivery, nil
}

// Create 创建配送记录
func (s *DeliveryService) Create(input DeliveryInput) (*models.Delivery, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if *input.MaxDays <= *input.MinDays {
		return nil, NewFieldError("max_days", "must be greater than min_days")
	}
	delivery := models.Delivery{
		Type:           input.Type,
		Status:         constants.DeliveryStatusProcessing,
		MinDays:        *input.MinDays,
		MaxDays:        *input.MaxDays,
		TrackingNumber: trimOptional(input.TrackingNumber),
		Carrier:        trimOptional(input.Carrier),
		Notes:          trimOptional(input.Notes),
	}
	if err := s.repo.Create(&delivery); err != nil {
		return nil, translateWriteError(err, nil, nil)
	}
	delivery.Derive(nowUTC())
	return &delivery, nil
}

// Transition 推进配送状态并按需写入发货、签收时间
func (s *DeliveryService) Transition(id uint, input DeliveryTransitionInput) (*models.Delivery, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var updated *models.Delivery
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		delivery, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return ErrNotFound
		}
		if err := applyDeliveryTransition(delivery, input.Status, input.Note, nowUTC()); err != nil {
			return err
		}
		if err := repo.Update(delivery); err != nil {
			return translateWriteError(err, nil, nil)
		}
		updated = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated.Derive(nowUTC())
	return updated, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
