package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler は注文の確定と確認画面。
type CheckoutHandler struct {
	uc   *usecase.CheckoutUsecase
	cart *CartHandler
}

// DI（セッションcookieの扱いはCartHandlerと共有する）
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, cart *CartHandler) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, cart: cart}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.placeOrder)
	e.GET("/orders/:id", h.getOrder)
}

type CheckoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) placeOrder(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), h.cart.sessionID(c), usecase.PlaceOrderInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Street:        req.Street,
		City:          req.City,
		Zip:           req.Zip,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CheckoutHandler) getOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
