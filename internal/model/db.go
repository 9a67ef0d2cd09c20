package model

import "time"

const RoleAdmin = "admin"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:32" json:"role,omitempty"` // "admin" or empty
	CreatedAt time.Time `json:"-"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"size:512" json:"image"`
	Description string    `gorm:"size:1024" json:"description"`
	CreatedAt   time.Time `json:"-"`
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName string      `gorm:"size:128" json:"name"`
	Email        string      `gorm:"size:128;index" json:"email"`
	Address      string      `gorm:"size:256" json:"address"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount  float64     `gorm:"not null" json:"totalAmount"`
	// correlation key round-tripped through the payment gateway;
	// empty only for orders created outside the gateway flow
	TransactionID string     `gorm:"size:64;index" json:"transactionId,omitempty"`
	PaymentStatus bool       `gorm:"not null" json:"paymentStatus"`
	PaymentMethod string     `gorm:"size:32" json:"paymentMethod,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Category string  `gorm:"size:64" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:128;index;not null" json:"email"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Name      string    `gorm:"size:128" json:"name"`
	Price     float64   `json:"price"`
	Image     string    `gorm:"size:512" json:"image"`
	CreatedAt time.Time `json:"-"`
}

type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Category string  `gorm:"size:64;index" json:"category"`
	Price    float64 `json:"price"`
	Image    string  `gorm:"size:512" json:"image"`
}

type Review struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:128" json:"name"`
	Details string  `gorm:"size:1024" json:"details"`
	Rating  float64 `json:"rating"`
}
