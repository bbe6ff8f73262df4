package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//検索（同じキーなら同じ結果を返す）
	FindByCheckoutKey(ctx context.Context, key string) (model.Order, bool, error)
	//管理者用の注文一覧（新しい順）
	ListAdmin(ctx context.Context) ([]model.Order, error)
}
