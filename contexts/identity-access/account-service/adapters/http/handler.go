package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"minerva/contexts/identity-access/account-service/application"
	"minerva/contexts/identity-access/account-service/ports"
	httptransport "minerva/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	account, err := h.Service.Register(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Status:    "success",
		AccountID: account.AccountID,
		Email:     account.Email,
	}, nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	pair, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Status:    "success",
		Token:     pair.Token,
		ExpiresAt: pair.Session.Expiry.UTC().Format(time.RFC3339),
	}, nil
}

// VerifySessionHandler backs the bearer-auth extraction at the HTTP boundary.
func (h Handler) VerifySessionHandler(authorization string) (ports.Session, error) {
	return h.Service.VerifySession(authorization)
}
