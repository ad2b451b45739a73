package models

import (
	"time"

	"github.com/superman-store/internal/constants"
)

// Purchase 购买记录表
// unit_price 为下单时的历史单价，不随商品当前售价变化
type Purchase struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                                                        // 主键
	Quantity     int       `gorm:"not null;check:check_positive_quantity,quantity > 0" json:"quantity"`                         // 购买数量
	UnitPrice    Money     `gorm:"type:decimal(10,2);not null;check:check_positive_unit_price,unit_price > 0" json:"unit_price"` // 成交单价
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`                                                           // 顾客ID
	ProductID    uint      `gorm:"not null;index" json:"product_id"`                                                            // 商品ID
	DeliveryID   *uint     `gorm:"index" json:"delivery_id"`                                                                    // 配送ID（可空）
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`                                                               // 购买时间
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`                                                                  // 创建时间
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`                                                                  // 更新时间

	TotalAmount    Money  `gorm:"-" json:"total_amount"`    // 小计 = 数量 × 成交单价（仅结构，不写入数据库）
	DeliveryStatus string `gorm:"-" json:"delivery_status"` // 展示用配送状态
	IsDelivered    bool   `gorm:"-" json:"is_delivered"`    // 是否已签收

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	Delivery *Delivery `gorm:"foreignKey:DeliveryID;constraint:OnDelete:SET NULL" json:"delivery,omitempty"`
}

// TableName 指定表名
func (Purchase) TableName() string {
	return "purchases"
}

// Total 小计只依据已保存的成交单价计算
func (p *Purchase) Total() Money {
	if p == nil {
		return Money{}
	}
	return p.UnitPrice.MulInt(p.Quantity)
}

// ResolveDeliveryStatus 根据关联配送记录得出展示状态
func ResolveDeliveryStatus(delivery *Delivery) string {
	switch {
	case delivery == nil:
		return constants.PurchaseDeliveryNotShipped
	case delivery.DeliveryDate != nil:
		return constants.PurchaseDeliveryDelivered
	case delivery.ShippingDate != nil:
		return constants.PurchaseDeliveryInTransit
	default:
		return constants.PurchaseDeliveryProcessing
	}
}

// Derive 填充派生字段；配送信息需已预加载
func (p *Purchase) Derive(now time.Time) {
	if p == nil {
		return
	}
	p.TotalAmount = p.Total()
	p.DeliveryStatus = ResolveDeliveryStatus(p.Delivery)
	p.IsDelivered = p.Delivery != nil && p.Delivery.DeliveryDate != nil
	p.Customer.Derive()
	p.Delivery.Derive(now)
}
