package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
	"github.com/kkuglocal/campus-backend/pkg/postgres"
	"github.com/kkuglocal/campus-backend/pkg/watermillx"
)

type UserRepo struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	pool    *pgxpool.Pool
	wlogger watermill.LoggerAdapter
}

// NewUserRepo creates a new instance of UserRepo.
// It also sets default tracer and logger if they are nil.
//
//	WARNING; panics if pool is nil
func NewUserRepo(pool *pgxpool.Pool, t trace.Tracer, l *slog.Logger) *UserRepo {
	if pool == nil {
		panic("pgxpool.Pool cannot be nil")
	}
	if t == nil {
		t = tracer
	}
	if l == nil {
		l = logger
	}

	return &UserRepo{
		tracer:  t,
		logger:  l,
		pool:    pool,
		wlogger: watermill.NewSlogLogger(l),
	}
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepo.GetUserByEmail")
	defer span.End()

	query := `
        SELECT id, name, student_number, email, password_hash, is_verified, verify_code, code_expires_at, created_at, updated_at
        FROM users
        WHERE email = $1;
    `

	var dto UserDTO
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&dto.ID, &dto.Name, &dto.StudentNumber, &dto.Email,
		&dto.PassHash, &dto.IsVerified, &dto.VerifyCode, &dto.CodeExpiresAt,
		&dto.CreatedAt, &dto.UpdatedAt,
	)
	if err != nil {
		otelx.RecordSpanError(span, err, "failed to get user by email")
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorx.NewNotFound().WithCause(err)
		}
		return nil, err
	}

	return UserToDomain(dto), nil
}

func (r *UserRepo) SaveUser(ctx context.Context, u *user.User) error {
	ctx, span := r.tracer.Start(ctx, "UserRepo.SaveUser")
	defer span.End()

	dto := DomainToUserDTO(u)

	query := `
        INSERT INTO users (id, name, student_number, email, password_hash, is_verified, verify_code, code_expires_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	return postgres.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		res, err := tx.Exec(ctx, query,
			dto.ID, dto.Name, dto.StudentNumber, dto.Email,
			dto.PassHash, dto.IsVerified, dto.VerifyCode, dto.CodeExpiresAt,
			dto.CreatedAt, dto.UpdatedAt,
		)
		if err != nil {
			otelx.RecordSpanError(span, err, "failed to insert user")
			if isUniqueViolation(err) {
				return errorx.NewDuplicateEntry().WithCause(err)
			}
			return err
		}
		if res.RowsAffected() == 0 {
			otelx.RecordSpanError(span, ErrNoRowsAffected, "no rows affected when inserting user")
			return fmt.Errorf("failed to insert user: %w", ErrNoRowsAffected)
		}

		if events := u.GetUncommittedEvents(); len(events) > 0 {
			if err := watermillx.Publish(ctx, tx, r.wlogger, events...); err != nil {
				otelx.RecordSpanError(span, err, "failed to publish events")
				return err
			}
		}
		return nil
	})
}

func (r *UserRepo) UpdateUserByEmail(
	ctx context.Context,
	email string,
	fn func(ctx context.Context, u *user.User) error,
) error {
	ctx, span := r.tracer.Start(ctx, "UserRepo.UpdateUserByEmail")
	defer span.End()
	if fn == nil {
		otelx.RecordSpanError(span, ErrNilFunc, "update function cannot be nil")
		return ErrNilFunc
	}

	selectquery := `
        SELECT id, name, student_number, email, password_hash, is_verified, verify_code, code_expires_at, created_at, updated_at
        FROM users
        WHERE email = $1
        FOR UPDATE;
    `
	updatequery := `
        UPDATE users
        SET name = $2, student_number = $3, email = $4, password_hash = $5,
            is_verified = $6, verify_code = $7, code_expires_at = $8,
            updated_at = $9
        WHERE id = $1;
    `

	// A persistable fn error must not roll the transaction back, so it is
	// carried past WithTx and returned only after the commit.
	var fnerr error
	txerr := postgres.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var dto UserDTO
		err := tx.QueryRow(ctx, selectquery, email).Scan(
			&dto.ID, &dto.Name, &dto.StudentNumber, &dto.Email,
			&dto.PassHash, &dto.IsVerified, &dto.VerifyCode, &dto.CodeExpiresAt,
			&dto.CreatedAt, &dto.UpdatedAt,
		)
		if err != nil {
			otelx.RecordSpanError(span, err, "failed to get user for update")
			if errors.Is(err, pgx.ErrNoRows) {
				return errorx.NewNotFound().WithCause(err)
			}
			return err
		}

		u := UserToDomain(dto)

		fnerr = fn(ctx, u)
		if fnerr != nil && !errorx.IsPersistable(fnerr) {
			otelx.RecordSpanError(span, fnerr, "failed to apply update function")
			return fnerr
		}

		dto = DomainToUserDTO(u)

		res, err := tx.Exec(ctx, updatequery,
			dto.ID, dto.Name, dto.StudentNumber, dto.Email,
			dto.PassHash, dto.IsVerified, dto.VerifyCode, dto.CodeExpiresAt,
			dto.UpdatedAt,
		)
		if err != nil {
			otelx.RecordSpanError(span, err, "failed to update user")
			return err
		}
		if res.RowsAffected() == 0 {
			otelx.RecordSpanError(span, ErrNoRowsAffected, "no rows affected when updating user")
			return fmt.Errorf("failed to update user: %w", ErrNoRowsAffected)
		}

		events := u.GetUncommittedEvents()
		if len(events) > 0 {
			if err := watermillx.Publish(ctx, tx, r.wlogger, events...); err != nil {
				otelx.RecordSpanError(span, err, "failed to publish events")
				return err
			}
		}

		return nil
	})
	if txerr != nil {
		return txerr
	}
	if fnerr != nil {
		otelx.RecordSpanError(span, fnerr, "update function returned an error but its mutations were persisted")
		return fnerr
	}
	return nil
}
