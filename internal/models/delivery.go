package models

import (
	"time"

	"github.com/superman-store/internal/constants"
)

// Delivery 配送记录表
// 所有时间均为 UTC；状态流转与时间戳写入见 service.DeliveryService.Transition
type Delivery struct {
	ID                uint       `gorm:"primarykey" json:"id"`                                                                                                                                      // 主键
	Type              string     `gorm:"type:varchar(20);not null" json:"type"`                                                                                                                     // 配送方式
	Status            string     `gorm:"type:varchar(20);not null;default:'Processing';index" json:"status"`                                                                                       // 配送状态
	MinDays           int        `gorm:"not null;check:check_min_days_positive,min_days >= 0" json:"min_days"`                                                                                     // 最短天数
	MaxDays           int        `gorm:"not null;check:check_max_days_greater,max_days > min_days" json:"max_days"`                                                                                // 最长天数
	TrackingNumber    *string    `gorm:"type:varchar(100)" json:"tracking_number"`                                                                                                                  // 物流单号
	Carrier           *string    `gorm:"type:varchar(100)" json:"carrier"`                                                                                                                          // 承运商
	Notes             *string    `gorm:"type:text" json:"notes"`                                                                                                                                    // 备注日志（只追加）
	ShippingDate      *time.Time `json:"shipping_date"`                                                                                                                                             // 发货时间
	DeliveryDate      *time.Time `gorm:"check:check_shipping_before_delivery,(shipping_date IS NULL) OR (delivery_date IS NULL) OR (shipping_date <= delivery_date)" json:"delivery_date"` // 签收时间
	EstimatedDelivery *time.Time `json:"estimated_delivery"`                                                                                                                                        // 预计送达时间
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`                                                                                                                                // 创建时间
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`                                                                                                                                // 更新时间

	// 派生字段（仅结构，不写入数据库）
	IsDeliveredFlag bool       `gorm:"-" json:"is_delivered"`        // 已签收
	IsInTransitFlag bool       `gorm:"-" json:"is_in_transit"`       // 运输中
	IsDelayedFlag   bool       `gorm:"-" json:"is_delayed"`          // 已延误
	Purchases       []Purchase `gorm:"-" json:"purchases,omitempty"` // 关联购买记录，按外键单独查询
}

// TableName 指定表名
func (Delivery) TableName() string {
	return "deliveries"
}

// IsDelivered 已签收
func (d *Delivery) IsDelivered() bool {
	return d != nil && d.Status == constants.DeliveryStatusDelivered && d.DeliveryDate != nil
}

// IsInTransit 运输中
func (d *Delivery) IsInTransit() bool {
	if d == nil {
		return false
	}
	switch d.Status {
	case constants.DeliveryStatusShipped, constants.DeliveryStatusInTransit, constants.DeliveryStatusOutForDelivery:
		return d.ShippingDate != nil && d.DeliveryDate == nil
	default:
		return false
	}
}

// IsDelayed 未签收且已超过预计送达时间
func (d *Delivery) IsDelayed(now time.Time) bool {
	if d == nil || d.EstimatedDelivery == nil || d.IsDelivered() {
		return false
	}
	return now.UTC().After(d.EstimatedDelivery.UTC())
}

// EstimateDelivery 以最短、最长天数的平均值估算送达时间
func (d *Delivery) EstimateDelivery() *time.Time {
	if d == nil || d.ShippingDate == nil {
		return nil
	}
	// 平均天数可能是半天，按小时计算
	hours := (clampDeliveryDays(d.MinDays) + clampDeliveryDays(d.MaxDays)) * 12
	estimated := d.ShippingDate.UTC().Add(time.Duration(hours) * time.Hour)
	return &estimated
}

// clampDeliveryDays 限制在 [0, MaxDeliveryDays]，避免换算 time.Duration 时溢出
func clampDeliveryDays(days int) int {
	if days < 0 {
		return 0
	}
	if days > constants.MaxDeliveryDays {
		return constants.MaxDeliveryDays
	}
	return days
}

// Derive 填充派生字段
func (d *Delivery) Derive(now time.Time) {
	if d == nil {
		return
	}
	d.IsDeliveredFlag = d.IsDelivered()
	d.IsInTransitFlag = d.IsInTransit()
	d.IsDelayedFlag = d.IsDelayed(now)
	for i := range d.Purchases {
		d.Purchases[i].Derive(now)
		// 购买记录随配送单查询时不预加载配送，按所属配送单计算展示状态
		if d.Purchases[i].Delivery == nil {
			d.Purchases[i].DeliveryStatus = ResolveDeliveryStatus(d)
			d.Purchases[i].IsDelivered = d.DeliveryDate != nil
		}
	}
}
