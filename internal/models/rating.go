package models

import (
	"time"
)

// Rating 商品评分表
// 同一顾客对同一商品只能评分一次
type Rating struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                                                 // 主键
	Rating     int       `gorm:"not null;check:check_rating_range,rating >= 1 AND rating <= 5" json:"rating"`          // 评分 1-5
	CustomerID uint      `gorm:"not null;index;uniqueIndex:unique_customer_product_rating,priority:1" json:"customer_id"` // 顾客ID
	ProductID  uint      `gorm:"not null;index;uniqueIndex:unique_customer_product_rating,priority:2" json:"product_id"`  // 商品ID
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`                                                           // 创建时间
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`                                                           // 更新时间

	IsEdited bool `gorm:"-" json:"is_edited"` // 是否修改过（仅结构，不写入数据库）

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName 指定表名
func (Rating) TableName() string {
	return "ratings"
}

// Derive 填充派生字段
func (r *Rating) Derive() {
	if r == nil {
		return
	}
	r.IsEdited = IsEdited(r.CreatedAt, r.UpdatedAt)
	r.Customer.Derive()
}
