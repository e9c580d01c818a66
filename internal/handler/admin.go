package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/middleware"
	"github.com/pixiapp/pixi-go/internal/service"
)

// AdminHandler handles the admin-only user management routes.
type AdminHandler struct {
	users *service.UserService
}

func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// HandleAllUsers handles GET /api/admin/all_users requests.
func (h *AdminHandler) HandleAllUsers(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	all, err := h.users.ListAll(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, all)
}

// HandleDeleteUser handles DELETE /api/admin/user/{id} requests.
func (h *AdminHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	if err := h.users.DeleteUser(r.Context(), ident.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
