package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/middleware"
	"github.com/pixiapp/pixi-go/internal/service"
)

// PictureHandler handles picture upload and deletion.
type PictureHandler struct {
	service *service.PictureService
}

func NewPictureHandler(svc *service.PictureService) *PictureHandler {
	return &PictureHandler{service: svc}
}

// HandleUpload handles POST /api/picture/upload multipart requests.
func (h *PictureHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20) // 16MB

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperror.New(apperror.MissingParameters, "no file uploaded"))
		return
	}
	defer file.Close()

	pic, err := h.service.Upload(r.Context(), ident.UserID, header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pic)
}

// HandleDelete handles DELETE /api/picture/{pictureid} requests.
func (h *PictureHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.New(apperror.NoToken, "no token provided"))
		return
	}

	pictureID := chi.URLParam(r, "pictureid")
	if pictureID == "" {
		writeError(w, apperror.New(apperror.MissingParameters, "missing picture id"))
		return
	}

	if err := h.service.Delete(r.Context(), ident.UserID, pictureID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"message": "success"})
}
