package user

import (
	"encoding/json"
	"time"

	"github.com/ARUMANDESU/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kkuglocal/campus-backend/internal/domain/event"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/randcode"
	"github.com/kkuglocal/campus-backend/pkg/validationx"
)

const PasswordCostFactor = 12 // Future-proofing; default is 10 in 2025.08.18

const (
	VerificationCodeLength = 6
	VerificationCodeTTL    = 10 * time.Minute
)

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.UUID(id).String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	uid, err := uuid.Parse(s)
	if err != nil {
		return err
	}

	*id = ID(uid)
	return nil
}

// User is an account holder on the campus app. A freshly registered user
// carries a pending verification code; once the code is confirmed the account
// is verified and the code fields are cleared for good.
type User struct {
	event.Recorder
	id            ID
	name          string
	studentNumber string
	email         string
	passHash      []byte
	isVerified    bool
	verifyCode    string
	codeExpiresAt time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type NewUserArgs struct {
	Name          string
	StudentNumber string
	Email         string
	Password      string
}

func NewUser(args NewUserArgs) (*User, error) {
	const op = "user.NewUser"
	err := validation.ValidateStruct(&args,
		validation.Field(&args.Name, validationx.NameRules...),
		validation.Field(&args.StudentNumber, validationx.StudentNumberRules...),
		validation.Field(&args.Email, validationx.SchoolEmailRules...),
		validation.Field(&args.Password, validationx.PasswordRules...),
	)
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}

	passHash, err := NewPasswordHash(args.Password)
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}

	code, err := randcode.GenerateNumericCode()
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}
	now := time.Now().UTC()

	u := &User{
		id:            NewID(),
		name:          args.Name,
		studentNumber: args.StudentNumber,
		email:         args.Email,
		passHash:      passHash,
		isVerified:    false,
		verifyCode:    code,
		codeExpiresAt: now.Add(VerificationCodeTTL),
		createdAt:     now,
		updatedAt:     now,
	}

	u.AddEvent(&UserRegistered{
		Header:           event.NewEventHeader(),
		UserID:           u.id,
		Email:            u.email,
		Name:             u.name,
		VerificationCode: code,
	})

	return u, nil
}

type RehydrateArgs struct {
	ID            ID
	Name          string
	StudentNumber string
	Email         string
	PassHash      []byte
	IsVerified    bool
	VerifyCode    string
	CodeExpiresAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Rehydrate(args RehydrateArgs) *User {
	return &User{
		id:            args.ID,
		name:          args.Name,
		studentNumber: args.StudentNumber,
		email:         args.Email,
		passHash:      args.PassHash,
		isVerified:    args.IsVerified,
		verifyCode:    args.VerifyCode,
		codeExpiresAt: args.CodeExpiresAt,
		createdAt:     args.CreatedAt,
		updatedAt:     args.UpdatedAt,
	}
}

// VerifyCode confirms the pending verification code. A verified account has
// no stored code, so a repeat attempt reads as a mismatch rather than leaking
// the account's verification state.
func (u *User) VerifyCode(code string) error {
	const op = "user.User.VerifyCode"
	if u.verifyCode == "" || u.verifyCode != code {
		return errorx.Wrap(ErrVerificationCodeMismatch, op)
	}

	if time.Now().After(u.codeExpiresAt) {
		return errorx.Wrap(ErrVerificationCodeExpired, op)
	}

	u.isVerified = true
	u.verifyCode = ""
	u.codeExpiresAt = time.Time{}
	u.updatedAt = time.Now().UTC()

	u.AddEvent(&EmailVerified{
		Header: event.NewEventHeader(),
		UserID: u.id,
		Email:  u.email,
	})

	return nil
}

// RegenerateCode replaces the pending code with a fresh one and restarts the
// expiry window.
func (u *User) RegenerateCode() error {
	const op = "user.User.RegenerateCode"
	if u.isVerified {
		return errorx.Wrap(ErrAlreadyVerified, op)
	}

	code, err := randcode.GenerateNumericCode()
	if err != nil {
		return errorx.Wrap(err, op)
	}

	now := time.Now().UTC()
	u.verifyCode = code
	u.codeExpiresAt = now.Add(VerificationCodeTTL)
	u.updatedAt = now

	u.AddEvent(&VerificationCodeResent{
		Header:           event.NewEventHeader(),
		UserID:           u.id,
		Email:            u.email,
		VerificationCode: code,
	})

	return nil
}

func (u *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(u.passHash, []byte(password))
}

func (u *User) ID() ID {
	if u == nil {
		return ID{}
	}

	return u.id
}

func (u *User) Name() string {
	if u == nil {
		return ""
	}

	return u.name
}

func (u *User) StudentNumber() string {
	if u == nil {
		return ""
	}

	return u.studentNumber
}

func (u *User) Email() string {
	if u == nil {
		return ""
	}

	return u.email
}

func (u *User) PassHash() []byte {
	if u == nil {
		return nil
	}

	return u.passHash
}

func (u *User) IsVerified() bool {
	if u == nil {
		return false
	}

	return u.isVerified
}

func (u *User) VerifyCodeValue() string {
	if u == nil {
		return ""
	}

	return u.verifyCode
}

func (u *User) CodeExpiresAt() time.Time {
	if u == nil {
		return time.Time{}
	}

	return u.codeExpiresAt
}

func (u *User) CreatedAt() time.Time {
	if u == nil {
		return time.Time{}
	}

	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	if u == nil {
		return time.Time{}
	}

	return u.updatedAt
}

func NewPasswordHash(password string) ([]byte, error) {
	passhash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCostFactor)
	if err != nil {
		return nil, err
	}

	return passhash, nil
}
