package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValidOrderStatus は列挙値かどうかだけを見る。
// 遷移の順序は制限しない（管理画面はどの状態へも変更できる）。
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal はdelivered/cancelledを終端として扱う
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"   //代金引換
	PaymentMethodGCash  PaymentMethod = "gcash" //電子ウォレット
	PaymentMethodPickup PaymentMethod = "cop"   //店頭支払い
)

func IsValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodCOD, PaymentMethodGCash, PaymentMethodPickup:
		return true
	default:
		return false
	}
}

type Order struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email         string        `gorm:"type:varchar(255)" json:"email"`
	Phone         string        `gorm:"type:varchar(30)" json:"phone"`
	Address       string        `gorm:"type:text;not null" json:"address"`
	TotalAmount   int64         `gorm:"not null" json:"total_amount"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`

	//再送信しても注文が二重に作られないようにするキー
	CheckoutKey string `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
