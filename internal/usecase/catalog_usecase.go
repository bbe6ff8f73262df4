package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/logger"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カタログの提供元。fallbackはDB障害や空ストアのときだけ。
const (
	CatalogSourceLive     = "live"
	CatalogSourceFallback = "fallback"
)

// ProductView は storefront 向けの商品表現（サイズは分割済み）。
type ProductView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Stock       int64    `json:"stock"`
	Sizes       []string `json:"sizes"`
	ImageURL    string   `json:"image_url"`
}

type CatalogListOutput struct {
	Items []ProductView `json:"items"`
	//"live" か "fallback"。障害が隠れないように必ず返す。
	Source string `json:"source"`
}

type CatalogDetailOutput struct {
	Product ProductView `json:"product"`
	Source  string      `json:"source"`
}

// CatalogUsecase は storefront の読み取り専用カタログ。
// DBが読めない・空のときは組み込みの一覧に切り替え、その事実をログに残す。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
	log         *logger.Logger
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository, log *logger.Logger) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		log:         log,
	}
}

func (u *CatalogUsecase) List(ctx context.Context) (CatalogListOutput, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		u.log.Warn("catalog list served from fallback", "reason", err.Error())
		return CatalogListOutput{
			Items:  toProductViews(catalog.Fallback()),
			Source: CatalogSourceFallback,
		}, nil
	}
	if len(products) == 0 {
		u.log.Warn("catalog list served from fallback", "reason", "store empty")
		return CatalogListOutput{
			Items:  toProductViews(catalog.Fallback()),
			Source: CatalogSourceFallback,
		}, nil
	}

	return CatalogListOutput{
		Items:  toProductViews(products),
		Source: CatalogSourceLive,
	}, nil
}

func (u *CatalogUsecase) Get(ctx context.Context, productID int64) (CatalogDetailOutput, error) {
	if productID <= 0 {
		return CatalogDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == nil {
		return CatalogDetailOutput{Product: toProductView(p), Source: CatalogSourceLive}, nil
	}

	//読めなかったら組み込み一覧に同じIDが無いか見る
	if fb, ok := catalog.FindFallback(productID); ok {
		u.log.Warn("catalog detail served from fallback", "product_id", productID, "reason", err.Error())
		return CatalogDetailOutput{Product: toProductView(fb), Source: CatalogSourceFallback}, nil
	}

	if err == repo.ErrNotFound {
		return CatalogDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return CatalogDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
}

func toProductView(p model.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.SizeList(),
		ImageURL:    p.ImageURL,
	}
}

func toProductViews(products []model.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out
}
