package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/infohub/internal/domain/user"
	"github.com/geocoder89/infohub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type UsersStore interface {
	Add(ctx context.Context, u user.User) error
	FindByEmail(ctx context.Context, email string) (user.User, error)
	FindByRole(ctx context.Context, role user.Role) (user.User, error)
}

type SessionWriter interface {
	SignIn(ctx context.Context, u user.User) error
	SignOut(ctx context.Context) error
}

type AuthHandler struct {
	users    UsersStore
	sessions SessionWriter
}

func NewAuthHandler(users UsersStore, sessions SessionWriter) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
	}
}

// SignUp appends a new user and signs them in. Email uniqueness is not
// enforced; a duplicate signup just creates a second account and login
// resolves to the first.
func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var req user.SignUpRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// students get the first year unless the form said otherwise
	if req.Role == user.RoleStudent && req.Year == "" {
		req.Year = user.Year1
	}

	u := user.NewFromSignUpRequest(req)

	cctx := ctx.Request.Context()

	err := h.users.Add(cctx, u)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	err = h.sessions.SignIn(cctx, u)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, u)
}

// Login looks up the first user with the given email. The password is
// accepted but never checked.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx := ctx.Request.Context()

	u, err := h.users.FindByEmail(cctx, req.Email)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found. Try signing up or use Quick Login!")
			return
		}

		RespondStorageError(ctx, err)
		return
	}

	err = h.sessions.SignIn(cctx, u)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}

// QuickLogin provisions the fixed demo identity for a role on first use
// and reuses it afterwards, so two quick-logins never mint two users.
func (h *AuthHandler) QuickLogin(ctx *gin.Context) {
	var req user.QuickLoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx := ctx.Request.Context()

	u, err := h.users.FindByRole(cctx, req.Role)

	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			RespondStorageError(ctx, err)
			return
		}

		u = user.NewDemoUser(req.Role)

		err = h.users.Add(cctx, u)

		if err != nil {
			RespondStorageError(ctx, err)
			return
		}
	}

	err = h.sessions.SignIn(cctx, u)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	err := h.sessions.SignOut(ctx.Request.Context())

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Me returns the session user loaded by the middleware.
func (h *AuthHandler) Me(ctx *gin.Context) {
	u, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Please log in first")
		return
	}

	ctx.JSON(http.StatusOK, u)
}
