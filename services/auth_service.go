//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"ichat/auth"
	"ichat/domain"
	"ichat/errors"
	"ichat/repositories"
)

// TokenIssuer is the signing capability consumed by login and by the
// pairing confirm step. Token format is owned by the implementation.
type TokenIssuer interface {
	Sign(userID domain.UserID) (string, error)
}

// EmailSender delivers verification codes. Actual delivery (SMTP, an
// external provider) is outside this service.
type EmailSender interface {
	Send(ctx context.Context, to, code string) error
}

// LogEmailSender is the development sender: it only logs the code.
type LogEmailSender struct {
	Log *slog.Logger
}

func (s LogEmailSender) Send(_ context.Context, to, code string) error {
	s.Log.Info("Email code issued", "to", to, "code", code)
	return nil
}

type IAuthService interface {
	SendEmailCode(ctx context.Context, email string) error
	Register(ctx context.Context, email, code, password, fullname string) (string, domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	Self(ctx context.Context, userID domain.UserID) (domain.User, error)
}

type AuthService struct {
	users  repositories.IUserRepository
	codes  repositories.IEmailCodeStore
	sender EmailSender
	issuer TokenIssuer
}

func NewAuthService(users repositories.IUserRepository, codes repositories.IEmailCodeStore,
	sender EmailSender, issuer TokenIssuer) IAuthService {
	return &AuthService{users: users, codes: codes, sender: sender, issuer: issuer}
}

func (s *AuthService) SendEmailCode(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return errors.ErrUserAlreadyExists
	} else if !stderrors.Is(err, errors.ErrUserNotFound) {
		return err
	}

	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, email, code)
}

func (s *AuthService) Register(ctx context.Context, email, code, password, fullname string) (string, domain.User, error) {
	correct, err := s.codes.Verify(ctx, email, code)
	if err != nil {
		return "", domain.User{}, err
	}
	if !correct {
		return "", domain.User{}, errors.ErrEmailCodeIncorrect
	}

	req := auth.RegisterRequest{Email: email, Fullname: fullname, Password: password}
	if err := auth.ValidateRegister(req); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// Hash in the service layer so the repository never sees plain text.
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash, fullname)
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		return "", domain.User{}, errors.ErrTokenGeneration
	}
	return token, user, nil
}

// ListUsers is the member-picking directory. Callers must be
// authenticated; the transport layer enforces that.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// Self resolves the caller's own profile from the injected identity.
func (s *AuthService) Self(ctx context.Context, userID domain.UserID) (domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Generic failure to avoid user enumeration.
		return "", domain.User{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", domain.User{}, errors.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		return "", domain.User{}, errors.ErrTokenGeneration
	}
	return token, user, nil
}
