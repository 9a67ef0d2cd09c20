package handler

import (
	"errors"
	"fmt"
	"grocery-bazaar-backend/internal/client"
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	clientURL      string
}

func NewPaymentHandler(paymentService service.PaymentService, clientURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		clientURL:      clientURL,
	}
}

func (h *PaymentHandler) SubmitOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid req body",
		})
	}

	result, err := h.paymentService.SubmitOrder(ctx, &req)

	var gatewayErr *client.GatewayError
	switch {
	case errors.Is(err, service.ErrInvalidOrder):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid order",
		})
	case errors.As(err, &gatewayErr):
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   true,
			Message: gatewayErr.Error(),
		})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// HandleSuccess, HandleFail and HandleCancel are the gateway's callbacks. The
// buyer's browser is what actually arrives here, so the outcomes are
// redirects back to the storefront dashboard.

func (h *PaymentHandler) HandleSuccess(c echo.Context) error {
	ctx := c.Request().Context()
	transactionID := c.QueryParam("transactionId")

	err := h.paymentService.MarkOrderPaid(ctx, transactionID)
	switch {
	case errors.Is(err, service.ErrMissingTransactionID):
		return c.Redirect(http.StatusFound, h.clientURL+"/dashboard/failed")
	case errors.Is(err, service.ErrTransactionNotFound):
		// unknown or already-handled id: terminal for this request
		return c.String(http.StatusOK, "Payment failed")
	case err != nil:
		return err
	}

	return c.Redirect(http.StatusFound,
		fmt.Sprintf("%s/dashboard/success?transactionId=%s", h.clientURL, transactionID))
}

func (h *PaymentHandler) HandleFail(c echo.Context) error {
	ctx := c.Request().Context()
	transactionID := c.QueryParam("transactionId")

	err := h.paymentService.RemoveFailedOrder(ctx, transactionID)
	if err != nil && !errors.Is(err, service.ErrMissingTransactionID) {
		return err
	}

	return c.Redirect(http.StatusFound, h.clientURL+"/dashboard/failed")
}

func (h *PaymentHandler) HandleCancel(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Payment cancelled",
	})
}

func (h *PaymentHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.paymentService.ListOrders(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *PaymentHandler) GetOrderByID(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid order id",
		})
	}

	order, err := h.paymentService.GetOrder(ctx, uint(orderID))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: "order not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *PaymentHandler) GetOrderByTransactionID(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.paymentService.GetOrderByTransactionID(ctx, c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: "order not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
