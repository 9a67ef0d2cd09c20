package handler

import (
	"errors"
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var product model.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid req body",
		})
	}

	if err := h.catalogService.CreateProduct(ctx, &product); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid product id",
		})
	}

	err = h.catalogService.DeleteProduct(ctx, uint(productID))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: "product not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: 1})
}

func (h *CatalogHandler) GetMenu(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.catalogService.ListMenu(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.catalogService.ListReviews(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}
