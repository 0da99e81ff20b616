package query

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kkuglocal/campus-backend/pkg/errorx"
)

// GetVerificationCodeHandler backs the dev-only endpoint that exposes a
// user's pending code, so local clients can verify without a mailbox.
type GetVerificationCodeHandler struct {
	pool *pgxpool.Pool
}

func NewGetVerificationCodeHandler(pool *pgxpool.Pool) *GetVerificationCodeHandler {
	return &GetVerificationCodeHandler{
		pool: pool,
	}
}

func (h *GetVerificationCodeHandler) Handle(ctx context.Context, email string) (string, error) {
	var code *string
	err := h.pool.QueryRow(ctx, `
        SELECT verify_code
        FROM users
        WHERE email = $1
    `, email).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorx.NewNotFound().WithCause(err)
		}
		return "", err
	}
	if code == nil {
		return "", errorx.NewNotFound()
	}
	return *code, nil
}
