package handler

import (
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/middleware"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCarts lists the cart scoped to the caller's own email: the email query
// parameter must match the token's email claim.
func (h *CartHandler) GetCarts(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []*model.CartItem{})
	}

	identity := middleware.IdentityFrom(c)
	if identity == nil || identity.Email != email {
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   true,
			Message: "Forbidden Access",
		})
	}

	items, err := h.cartService.ListByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid req body",
		})
	}

	if err := h.cartService.Add(ctx, &item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid cart item id",
		})
	}

	deleted, err := h.cartService.Delete(ctx, uint(itemID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}
