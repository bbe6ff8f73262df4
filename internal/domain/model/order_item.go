package model

import "time"

// 注文の明細
// 価格とサイズは注文時点のスナップショットを必ず保存。
// 商品が後から変更・削除されても明細は変わらない。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	ProductID           int64     `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	Size                string    `gorm:"type:varchar(20);not null" json:"size"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot   int64     `gorm:"not null" json:"unit_price_snapshot"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
