package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/cart"
	"app/internal/domain/model"
	"app/internal/logger"
	repo "app/internal/repository"
)

// CheckoutUsecase はカートを注文に変換する。
// ヘッダと明細は同一トランザクションで書き、片方だけ残る状態を作らない。
type CheckoutUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	store  *cart.Store
	log    *logger.Logger
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	store *cart.Store,
	log *logger.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:     tx,
		orders: orders,
		items:  items,
		store:  store,
		log:    log,
	}
}

type PlaceOrderInput struct {
	Name          string
	Email         string
	Phone         string
	Street        string
	City          string
	Zip           string
	PaymentMethod string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	CustomerName  string            `json:"customer_name"`
	Address       string            `json:"address"`
	TotalAmount   int64             `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items"`
}

// PlaceOrder はセッションのカートから注文を作る。
// 合計は必ずサーバ側でカートから計算し、クライアントの表示値は信用しない。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.Zip) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}
	if !model.IsValidPaymentMethod(in.PaymentMethod) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	sess := u.store.Session(sessionID)

	//カートのスナップショットと合計
	var lines []cart.Line
	var total int64
	sess.Do(func(c *cart.Cart) {
		lines = c.Lines()
		total = c.Total()
	})
	if len(lines) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	address := fmt.Sprintf("%s, %s, %s",
		strings.TrimSpace(in.Street), strings.TrimSpace(in.City), strings.TrimSpace(in.Zip))

	//再送信しても同じ注文になるキー
	key := sess.CheckoutKey()

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら既存注文を返す
		existing, found, err := r.Orders().FindByCheckoutKey(ctx, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = toOrderOutput(existing, items)
			return nil
		}

		now := time.Now()
		orderItems := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           l.ProductID,
				ProductNameSnapshot: l.Name,
				Size:                l.Size,
				Quantity:            l.Quantity,
				UnitPriceSnapshot:   l.Price,
				CreatedAt:           now,
			})
		}

		//初期状態は必ずpending
		order := model.Order{
			CustomerName:  strings.TrimSpace(in.Name),
			Email:         strings.TrimSpace(in.Email),
			Phone:         strings.TrimSpace(in.Phone),
			Address:       address,
			TotalAmount:   total,
			PaymentMethod: model.PaymentMethod(in.PaymentMethod),
			Status:        model.OrderStatusPending,
			CheckoutKey:   key,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			//同時に同じキーが入った場合はもう一度引いて同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByCheckoutKey(ctx, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		u.log.Error("place order failed", "error", err.Error())
		return OrderOutput{}, err
	}

	//確定できたのでカートを空にしてキーを捨てる
	sess.ResetAfterCheckout()

	u.log.Info("order placed", "order_id", out.ID, "total", out.TotalAmount)
	return out, nil
}

// GetOrder は注文確認画面用。ヘッダと明細を返す。
func (u *CheckoutUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOrderOutput(o, items), nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Size:      it.Size,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Address:       o.Address,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
	}
}
