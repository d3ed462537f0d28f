package handlers

import (
	"net/http"
	"time"

	"github.com/dom/adboard/internal/api/middleware"
	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/service"
	"github.com/dom/adboard/internal/validation"
	"github.com/go-chi/chi/v5"
)

type AdHandler struct {
	adService   *service.AdService
	authService *service.AuthService
}

func NewAdHandler(adService *service.AdService, authService *service.AuthService) *AdHandler {
	return &AdHandler{adService: adService, authService: authService}
}

type AdResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     *uint     `json:"owner_id"`
}

func newAdResponse(ad *domain.Ad) AdResponse {
	return AdResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		CreatedAt:   ad.CreatedAt,
		OwnerID:     ad.OwnerID,
	}
}

func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, verr := validation.Decode(r.Body)
	if verr != nil {
		respondError(w, "ad.Create", verr)
		return
	}

	// Bearer-token requests may omit body credentials
	schema := validation.CreateAd
	if _, authed := middleware.GetUserID(r.Context()); authed {
		schema = validation.CreateAdAuthed
	}

	fields, verr := schema.Clean(raw)
	if verr != nil {
		respondError(w, "ad.Create", verr)
		return
	}

	ownerID, err := h.resolveOwner(r, fields)
	if err != nil {
		respondError(w, "ad.Create", err)
		return
	}

	ad, err := h.adService.Create(r.Context(), service.CreateAdInput{
		Title:       fields["title"],
		Description: fields["description"],
		OwnerID:     ownerID,
	})
	if err != nil {
		respondError(w, "ad.Create", err)
		return
	}

	writeJSON(w, http.StatusOK, newAdResponse(ad))
}

func (h *AdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "ad.Get", domain.ErrAdNotFound)
		return
	}

	ad, err := h.adService.Get(r.Context(), id)
	if err != nil {
		respondError(w, "ad.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, newAdResponse(ad))
}

func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "ad.Update", domain.ErrAdNotFound)
		return
	}

	raw, verr := validation.Decode(r.Body)
	if verr != nil {
		respondError(w, "ad.Update", verr)
		return
	}

	fields, verr := validation.PatchAd.Clean(raw)
	if verr != nil {
		respondError(w, "ad.Update", verr)
		return
	}

	ownerID, err := h.resolveOwner(r, fields)
	if err != nil {
		respondError(w, "ad.Update", err)
		return
	}

	patch := service.AdPatch{}
	if title, ok := fields["title"]; ok {
		patch.Title = &title
	}
	if description, ok := fields["description"]; ok {
		patch.Description = &description
	}

	ad, err := h.adService.Update(r.Context(), id, ownerID, patch)
	if err != nil {
		respondError(w, "ad.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, newAdResponse(ad))
}

func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "ad.Delete", domain.ErrAdNotFound)
		return
	}

	raw, verr := validation.Decode(r.Body)
	if verr != nil {
		respondError(w, "ad.Delete", verr)
		return
	}

	fields, verr := validation.PatchAd.Clean(raw)
	if verr != nil {
		respondError(w, "ad.Delete", verr)
		return
	}

	ownerID, err := h.resolveOwner(r, fields)
	if err != nil {
		respondError(w, "ad.Delete", err)
		return
	}

	if err := h.adService.Delete(r.Context(), id, ownerID); err != nil {
		respondError(w, "ad.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// resolveOwner turns the request's credentials into a user id: body
// credentials re-authenticate on every call; a bearer identity resolved by
// the middleware substitutes for them. Having neither is a validation
// failure, not an auth one — no credential was even presented.
func (h *AdHandler) resolveOwner(r *http.Request, fields map[string]string) (uint, error) {
	if login, ok := fields["owner_login"]; ok {
		user, err := h.authService.Resolve(r.Context(), login, fields["password"])
		if err != nil {
			return 0, err
		}
		return user.ID, nil
	}

	if userID, ok := middleware.GetUserID(r.Context()); ok {
		return userID, nil
	}

	return 0, &validation.Error{Fields: map[string]string{
		"owner_login": "required field missing",
		"password":    "required field missing",
	}}
}
