package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
)

type UserDTO struct {
	ID            uuid.UUID
	Name          string
	StudentNumber string
	Email         string
	PassHash      []byte
	IsVerified    bool
	VerifyCode    *string
	CodeExpiresAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func DomainToUserDTO(u *user.User) UserDTO {
	dto := UserDTO{
		ID:            uuid.UUID(u.ID()),
		Name:          u.Name(),
		StudentNumber: u.StudentNumber(),
		Email:         u.Email(),
		PassHash:      u.PassHash(),
		IsVerified:    u.IsVerified(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}

	if code := u.VerifyCodeValue(); code != "" {
		expiresAt := u.CodeExpiresAt()
		dto.VerifyCode = &code
		dto.CodeExpiresAt = &expiresAt
	}

	return dto
}

func UserToDomain(dto UserDTO) *user.User {
	args := user.RehydrateArgs{
		ID:            user.ID(dto.ID),
		Name:          dto.Name,
		StudentNumber: dto.StudentNumber,
		Email:         dto.Email,
		PassHash:      dto.PassHash,
		IsVerified:    dto.IsVerified,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}

	if dto.VerifyCode != nil {
		args.VerifyCode = *dto.VerifyCode
	}
	if dto.CodeExpiresAt != nil {
		args.CodeExpiresAt = *dto.CodeExpiresAt
	}

	return user.Rehydrate(args)
}
