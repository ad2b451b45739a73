package models

import (
	"strings"
	"time"
)

// Customer 顾客表
// 删除顾客时，评论、评分、购买记录随外键级联删除
type Customer struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                                                              // 主键
	Firstname       string    `gorm:"type:varchar(50);not null;check:check_firstname_length,length(firstname) >= 2" json:"firstname"`   // 名
	Lastname        string    `gorm:"type:varchar(50);not null;check:check_lastname_length,length(lastname) >= 2" json:"lastname"`      // 姓
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex;check:check_email_format,email LIKE '%@%.%'" json:"email"` // 邮箱（唯一）
	Phone           string    `gorm:"type:varchar(20);not null;check:check_phone_length,length(phone) >= 10" json:"phone"`             // 电话
	DeliveryAddress string    `gorm:"type:varchar(500);not null" json:"delivery_address"`                                              // 收货地址
	BillingAddress  string    `gorm:"type:varchar(500);not null" json:"billing_address"`                                               // 账单地址
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`                                                                      // 创建时间
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`                                                                      // 更新时间

	FullName string `gorm:"-" json:"full_name"` // 全名（仅结构，不写入数据库）
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// DisplayName 拼接全名
func (c *Customer) DisplayName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Firstname + " " + c.Lastname)
}

// Derive 填充派生字段
func (c *Customer) Derive() {
	if c == nil {
		return
	}
	c.FullName = c.DisplayName()
}
