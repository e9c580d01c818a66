package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/middleware"
	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/service"
)

// UserHandler handles the authenticated profile routes.
type UserHandler struct {
	users    *service.UserService
	pictures *service.PictureService
}

func NewUserHandler(users *service.UserService, pictures *service.PictureService) *UserHandler {
	return &UserHandler{users: users, pictures: pictures}
}

// HandleInfo handles GET /api/user/info requests.
func (h *UserHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	user, err := h.users.Info(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleEdit handles PUT /api/user/edit_info requests.
func (h *UserHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var upd model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, apperror.New(apperror.MissingParameters, "invalid request body"))
		return
	}

	if err := h.users.Edit(r.Context(), ident.UserID, upd); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user successfully updated"})
}

// HandleOwnPictures handles GET /api/user/pictures requests.
func (h *UserHandler) HandleOwnPictures(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	pics, err := h.pictures.ListOwn(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pics)
}
