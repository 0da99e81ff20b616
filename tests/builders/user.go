package builders

import (
	"time"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/randcode"
	"github.com/kkuglocal/campus-backend/tests/fixtures"
)

type UserBuilder struct {
	id            user.ID
	name          string
	studentNumber string
	email         string
	password      string
	passHash      []byte
	isVerified    bool
	verifyCode    string
	codeExpiresAt time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUserBuilder() *UserBuilder {
	code, _ := randcode.GenerateNumericCode()
	now := time.Now()

	return &UserBuilder{
		id:            user.NewID(),
		name:          fixtures.ValidName,
		studentNumber: fixtures.ValidStudentNumber,
		email:         fixtures.ValidStudentEmail,
		password:      fixtures.ValidPassword,
		isVerified:    false,
		verifyCode:    code,
		codeExpiresAt: now.Add(user.VerificationCodeTTL),
		createdAt:     now,
		updatedAt:     now,
	}
}

func (b *UserBuilder) WithID(id user.ID) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithStudentNumber(studentNumber string) *UserBuilder {
	b.studentNumber = studentNumber
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	b.passHash = nil
	return b
}

func (b *UserBuilder) WithPassHash(passHash []byte) *UserBuilder {
	b.passHash = passHash
	return b
}

func (b *UserBuilder) WithVerifyCode(code string) *UserBuilder {
	b.verifyCode = code
	return b
}

func (b *UserBuilder) WithExpiredCode() *UserBuilder {
	b.codeExpiresAt = time.Now().Add(-1 * time.Hour)
	return b
}

func (b *UserBuilder) Verified() *UserBuilder {
	b.isVerified = true
	b.verifyCode = ""
	b.codeExpiresAt = time.Time{}
	return b
}

func (b *UserBuilder) Build() *user.User {
	passHash := b.passHash
	if passHash == nil {
		passHash, _ = user.NewPasswordHash(b.password)
	}

	return user.Rehydrate(user.RehydrateArgs{
		ID:            b.id,
		Name:          b.name,
		StudentNumber: b.studentNumber,
		Email:         b.email,
		PassHash:      passHash,
		IsVerified:    b.isVerified,
		VerifyCode:    b.verifyCode,
		CodeExpiresAt: b.codeExpiresAt,
		CreatedAt:     b.createdAt,
		UpdatedAt:     b.updatedAt,
	})
}

func (b *UserBuilder) BuildNewUserArgs() user.NewUserArgs {
	return user.NewUserArgs{
		Name:          b.name,
		StudentNumber: b.studentNumber,
		Email:         b.email,
		Password:      b.password,
	}
}

func (b *UserBuilder) BuildNew() (*user.User, error) {
	return user.NewUser(b.BuildNewUserArgs())
}
