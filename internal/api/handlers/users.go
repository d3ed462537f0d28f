package handlers

import (
	"net/http"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/service"
	"github.com/dom/adboard/internal/validation"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserResponse is the public projection; the password hash never leaves the
// service.
type UserResponse struct {
	ID        uint      `json:"id"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Login:     user.Login,
		CreatedAt: user.CreatedAt,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, verr := validation.Decode(r.Body)
	if verr != nil {
		respondError(w, "user.Create", verr)
		return
	}

	fields, verr := validation.CreateUser.Clean(raw)
	if verr != nil {
		respondError(w, "user.Create", verr)
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Login:    fields["login"],
		Password: fields["password"],
	})
	if err != nil {
		respondError(w, "user.Create", err)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "user.Get", domain.ErrUserNotFound)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		respondError(w, "user.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, "user.Update", domain.ErrUserNotFound)
		return
	}

	raw, verr := validation.Decode(r.Body)
	if verr != nil {
		respondError(w, "user.Update", verr)
		return
	}

	fields, verr := validation.PatchUser.Clean(raw)
	if verr != nil {
		respondError(w, "user.Update", verr)
		return
	}

	patch := service.UserPatch{}
	if login, ok := fields["login"]; ok {
		patch.Login = &login
	}
	if password, ok := fields["password"]; ok {
		patch.Password = &password
	}

	user, err := h.userService.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, "user.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}
