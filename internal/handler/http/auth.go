package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/auth"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http/response"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.ExpiresAt))
	response.Success(w, resp)
}

// caller reads the authenticated user out of the verified token. Handlers
// behind AuthRequired can rely on the claims being present.
func caller(ctx context.Context) (userID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false, auth.ErrInvalidToken
	}

	isAdmin, _ = claims["is_admin"].(bool)
	return userID, isAdmin, nil
}
