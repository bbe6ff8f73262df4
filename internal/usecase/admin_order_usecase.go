package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/logger"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	log    *logger.Logger
}

func NewAdminOrderUsecase(
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	log *logger.Logger,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orders: orders,
		items:  items,
		log:    log,
	}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// List は全注文を新しい順に、明細付きで返す。
func (u *AdminOrderUsecase) List(ctx context.Context, adminUserID int64) ([]OrderOutput, error) {
	if adminUserID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListAdmin(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.items.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}
	return outs, nil
}

// UpdateStatus はステータスを列挙値のどれかに変更する。
// 遷移の順序は制限しない。ただし終端（delivered/cancelled）から戻す操作は
// 見直し候補として警告ログに残す。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, adminUserID int64, orderID int64, in AdminUpdateOrderStatusInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !model.IsValidOrderStatus(in.Status) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	current, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	next := model.OrderStatus(in.Status)
	if current.Status.IsTerminal() && next != current.Status {
		u.log.Warn("order status leaving terminal state",
			"order_id", orderID,
			"from", string(current.Status),
			"to", string(next),
			"admin_user_id", adminUserID,
		)
	}

	if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
