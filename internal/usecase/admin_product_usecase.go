package usecase

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewAdminProductUsecase(productRepo repo.ProductRepository) *AdminProductUsecase {
	return &AdminProductUsecase{productRepo: productRepo}
}

// AdminProductInput は管理フォームの入力。
// priceは文字列で届くので保存前に数値へ、sizesはカンマ区切りで届くので分割する。
type AdminProductInput struct {
	Name        string
	Description string
	Category    string
	Price       string
	Stock       int64
	Sizes       string
	ImageURL    string
}

func (u *AdminProductUsecase) parse(in AdminProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	price, err := strconv.ParseInt(strings.TrimSpace(in.Price), 10, 64)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	//"S, M , L" -> "S,M,L"（前後の空白を落として保存）
	sizes := model.JoinSizes(strings.Split(in.Sizes, ","))

	return model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       price,
		Stock:       in.Stock,
		Sizes:       sizes,
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, adminUserID int64, in AdminProductInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := u.parse(in)
	if err != nil {
		return 0, err
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created.ID, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, adminUserID int64, productID int64, in AdminProductInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.parse(in)
	if err != nil {
		return err
	}
	p.ID = productID

	err = u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Delete は商品を消す。過去の注文明細はスナップショットを持つので壊れない。
func (u *AdminProductUsecase) Delete(ctx context.Context, adminUserID int64, productID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// List は管理画面用の一覧。storefrontと違ってfallbackには切り替えず、
// DB障害はそのままエラーで見せる（運用者に実態を隠さない）。
func (u *AdminProductUsecase) List(ctx context.Context, adminUserID int64) ([]ProductView, error) {
	if adminUserID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductViews(products), nil
}
