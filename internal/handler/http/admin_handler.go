package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/handler/http/dto"
	"github.com/pregen/shop-api/internal/handler/http/middleware"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// AdminHandler serves the privileged account endpoints. Role gates are applied by the router.
type AdminHandler struct {
	userUsecase usecasecontract.IUserUseCase
	errors      middleware.ErrorResponder
}

func NewAdminHandler(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *AdminHandler {
	return &AdminHandler{
		userUsecase: userUsecase,
		errors:      middleware.ErrorResponder{Verbose: !config.IsProduction()},
	}
}

// UpdateUser changes the role and/or password of :id.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateRoleOrPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	actor, _ := middleware.CurrentUser(c)
	if err := h.userUsecase.UpdateRoleOrPassword(c.Request.Context(), actor, c.Param("id"), req.NewRole, req.NewPassword); err != nil {
		h.errors.Respond(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User updated successfully")
}

// DeleteUser soft-deletes :id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	user, err := h.userUsecase.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User soft-deleted successfully",
		User:    dto.ToUserResponse(*user),
	})
}

func (h *AdminHandler) RestoreUser(c *gin.Context) {
	if err := h.userUsecase.Restore(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User restored successfully")
}

func (h *AdminHandler) ToggleBlock(c *gin.Context) {
	blocked, err := h.userUsecase.ToggleBlock(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	message := "User unblocked"
	if blocked {
		message = "User blocked"
	}
	SuccessHandler(c, http.StatusOK, dto.BlockResponse{Success: true, Message: message, Blocked: blocked})
}
