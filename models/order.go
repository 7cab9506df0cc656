package models

import "time"

const OrderStatusPending = "Pending"

type Order struct {
	ID               uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Items            []OrderItem `gorm:"foreignKey:OrderID" json:"orderItems"`
	ShippingAddress1 string      `gorm:"not null" json:"shippingAddress1"`
	ShippingAddress2 string      `json:"shippingAddress2"`
	City             string      `json:"city"`
	Zip              string      `json:"zip"`
	Country          string      `json:"country"`
	Phone            string      `json:"phone"`
	Status           string      `gorm:"not null;default:'Pending'" json:"status"`
	// TotalPrice snapshots product prices at assembly time; later price
	// changes never touch it.
	TotalPrice  float64   `json:"totalPrice"`
	UserID      uint      `gorm:"index" json:"userId"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	DateOrdered time.Time `gorm:"autoCreateTime" json:"dateOrdered"`
}

// OrderItem rows exist only as parts of an order. They are written first
// during assembly and attached to their order once it is persisted.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
