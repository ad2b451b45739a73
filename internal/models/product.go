package models

import (
	"time"
)

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                                                    // 主键
	Name        string    `gorm:"type:varchar(100);not null;index" json:"name"`                                            // 商品名称
	Price       Money     `gorm:"type:decimal(10,2);not null;check:check_positive_price,price > 0" json:"price"`           // 当前售价
	ImageURL    string    `gorm:"type:varchar(500);not null" json:"image_url"`                                             // 图片地址
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`                                         // 分类（Comics / Clothing / Collectibles ...）
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`                                          // 商品描述
	Quantity    int       `gorm:"not null;default:0;check:check_non_negative_quantity,quantity >= 0" json:"quantity"`      // 库存数量
	InStock     bool      `gorm:"not null" json:"in_stock"`                                                                // 是否有货（缺省由服务层置为 true）
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`                                                              // 创建时间
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`                                                              // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
