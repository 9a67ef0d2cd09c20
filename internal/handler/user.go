package handler

import (
	"errors"
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/middleware"
	"grocery-bazaar-backend/internal/service"
	"grocery-bazaar-backend/internal/token"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
	tokens      *token.Service
}

func NewUserHandler(userService service.UserService, tokens *token.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokens:      tokens,
	}
}

func (h *UserHandler) IssueToken(c echo.Context) error {
	var identity token.Identity
	if err := c.Bind(&identity); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid req body",
		})
	}

	signed, err := h.tokens.Issue(&identity)
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, signed)
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid req body",
		})
	}

	user, created, err := h.userService.Register(ctx, req.Name, req.Email)
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: "User already exists",
		})
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// AdminStatus reports whether the given email holds the admin role. A caller
// may only ask about their own email; any mismatch stops here, before the
// store is touched.
func (h *UserHandler) AdminStatus(c echo.Context) error {
	ctx := c.Request().Context()
	email := c.Param("email")

	identity := middleware.IdentityFrom(c)
	if identity == nil || identity.Email != email {
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   true,
			Message: "Forbidden Access",
		})
	}

	isAdmin, err := h.userService.IsAdmin(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: isAdmin})
}

func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid user id",
		})
	}

	err = h.userService.PromoteToAdmin(ctx, uint(userID))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: "user not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User promoted to admin"})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: "invalid user id",
		})
	}

	err = h.userService.Delete(ctx, uint(userID))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: "user not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: 1})
}
