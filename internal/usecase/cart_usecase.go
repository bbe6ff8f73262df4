package usecase

import (
	"context"
	"net/http"

	"app/internal/cart"
)

// CartUsecase は /cart の業務ロジック。
// カートはセッションローカルのメモリ上にだけあり、DBには置かない。
type CartUsecase struct {
	store   *cart.Store
	catalog *CatalogUsecase
}

func NewCartUsecase(store *cart.Store, catalog *CatalogUsecase) *CartUsecase {
	return &CartUsecase{
		store:   store,
		catalog: catalog,
	}
}

type CartResponse struct {
	Items     []cart.Line `json:"items"`
	Total     int64       `json:"total"`
	ItemCount int64       `json:"item_count"`
}

type AddCartInput struct {
	ProductID int64
	Size      string
}

type UpdateCartInput struct {
	ProductID int64
	Size      string
	Quantity  int64
}

func (u *CartUsecase) GetCart(sessionID string) CartResponse {
	var out CartResponse
	u.store.Session(sessionID).Do(func(c *cart.Cart) {
		out = toCartResponse(c)
	})
	return out
}

// AddItem は商品とサイズを検証してからカートに積む。
// 集約自体はサイズを検証しないので、呼び出し側にあたるここで展開サイズを確認する。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Size == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "size required")
	}

	//カタログから商品を引く（fallback提供中でも追加できる）
	detail, err := u.catalog.Get(ctx, in.ProductID)
	if err != nil {
		return CartResponse{}, err
	}

	offered := false
	for _, s := range detail.Product.Sizes {
		if s == in.Size {
			offered = true
			break
		}
	}
	if !offered {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "size not offered")
	}

	info := cart.ProductInfo{
		ID:       detail.Product.ID,
		Name:     detail.Product.Name,
		Price:    detail.Product.Price,
		ImageURL: detail.Product.ImageURL,
	}

	var out CartResponse
	u.store.Session(sessionID).Do(func(c *cart.Cart) {
		c.AddItem(info, in.Size)
		out = toCartResponse(c)
	})
	return out, nil
}

// UpdateItem は数量変更。0以下は削除と同じ。
// 在庫上限はここでは見ない（storefrontの表示上の情報にとどめる）。
func (u *CartUsecase) UpdateItem(sessionID string, in UpdateCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Size == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "size required")
	}

	var out CartResponse
	u.store.Session(sessionID).Do(func(c *cart.Cart) {
		c.SetQuantity(in.ProductID, in.Size, in.Quantity)
		out = toCartResponse(c)
	})
	return out, nil
}

// RemoveItem は明細削除。存在しなくてもエラーにしない。
func (u *CartUsecase) RemoveItem(sessionID string, productID int64, size string) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	var out CartResponse
	u.store.Session(sessionID).Do(func(c *cart.Cart) {
		c.RemoveItem(productID, size)
		out = toCartResponse(c)
	})
	return out, nil
}

func toCartResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:     c.Lines(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
