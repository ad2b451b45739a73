package models

import (
	"time"
)

// Comment 商品评论表
type Comment struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                                                     // 主键
	Content    string    `gorm:"type:varchar(1000);not null;check:check_comment_length,length(content) >= 3" json:"content"` // 评论内容
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`                                                        // 顾客ID
	ProductID  uint      `gorm:"not null;index" json:"product_id"`                                                         // 商品ID
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`                                                               // 创建时间
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`                                                               // 更新时间

	IsEdited bool `gorm:"-" json:"is_edited"` // 是否编辑过（仅结构，不写入数据库）

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"` // 评论人
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`   // 被评论商品
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}

// Derive 填充派生字段
func (c *Comment) Derive() {
	if c == nil {
		return
	}
	c.IsEdited = IsEdited(c.CreatedAt, c.UpdatedAt)
	c.Customer.Derive()
}

// IsEdited 更新时间晚于创建时间即视为编辑过
func IsEdited(createdAt, updatedAt time.Time) bool {
	return updatedAt.After(createdAt)
}
