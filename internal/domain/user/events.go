package user

import (
	"github.com/kkuglocal/campus-backend/internal/domain/event"
)

const EventStreamName = "events_user"

type UserRegistered struct {
	event.Header
	event.Otel
	UserID           ID     `json:"user_id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	VerificationCode string `json:"verification_code"`
}

func (e UserRegistered) GetStreamName() string {
	return EventStreamName
}

type VerificationCodeResent struct {
	event.Header
	event.Otel
	UserID           ID     `json:"user_id"`
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}

func (e VerificationCodeResent) GetStreamName() string {
	return EventStreamName
}

type EmailVerified struct {
	event.Header
	event.Otel
	UserID ID     `json:"user_id"`
	Email  string `json:"email"`
}

func (e EmailVerified) GetStreamName() string {
	return EventStreamName
}
