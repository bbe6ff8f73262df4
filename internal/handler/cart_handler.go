package handler

import (
	"net/http"
	"strconv"

	"app/internal/cart"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カートセッションのcookie名
const cartSessionCookie = "cart_session"

// CartHandler は /cart のAPI。カートはcookieのセッションIDに紐づく。
type CartHandler struct {
	uc    *usecase.CartUsecase
	store *cart.Store
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, store *cart.Store) *CartHandler {
	return &CartHandler{uc: uc, store: store}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.get)
	e.POST("/cart/items", h.addItem)
	e.PUT("/cart/items", h.updateItem)
	e.DELETE("/cart/items", h.removeItem)
}

// sessionID はcookieからセッションIDを取り出す。無ければ採番してcookieを配る。
func (h *CartHandler) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	sid := h.store.NewSessionID()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

type AddCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
}

type UpdateCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

func (h *CartHandler) get(c echo.Context) error {
	out := h.uc.GetCart(h.sessionID(c))
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), h.sessionID(c), usecase.AddCartInput{
		ProductID: req.ProductID,
		Size:      req.Size,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItem(h.sessionID(c), usecase.UpdateCartInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// DELETE /cart/items?product_id=1&size=M
func (h *CartHandler) removeItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}
	size := c.QueryParam("size")

	out, err := h.uc.RemoveItem(h.sessionID(c), productID, size)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
