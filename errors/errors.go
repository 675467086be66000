package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrEmailCodeIncorrect = fmt.Errorf("email verification code incorrect")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrIdentityRequired   = fmt.Errorf("authenticated identity required")

	ErrChatNotFound  = fmt.Errorf("chat not found")
	ErrNotChatMember = fmt.Errorf("user is not a chat member")
	ErrNotChatOwner  = fmt.Errorf("user is not the chat owner")
	ErrTooFewMembers = fmt.Errorf("a chat needs at least two members")

	ErrUnknownChannel   = fmt.Errorf("unknown notification channel")
	ErrInvalidChange    = fmt.Errorf("invalid change payload")
	ErrChangeFeedClosed = fmt.Errorf("change feed closed")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)

// MapToGRPCError translates domain sentinels into gRPC status errors so
// transport handlers never leak raw internal errors to clients.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrIdentityRequired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrEmailCodeIncorrect):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrChatNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotChatMember), errors.Is(err, ErrNotChatOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrTooFewMembers):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
