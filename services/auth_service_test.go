package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ichat/auth"
	"ichat/domain"
	"ichat/errors"
	"ichat/mocks"
)

func TestAuthService_SendEmailCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("issues and delivers a code for a fresh email", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)
		sender := mocks.NewMockEmailSender(ctrl)

		users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").
			Return(domain.User{}, errors.ErrUserNotFound)
		codes.EXPECT().Issue(gomock.Any(), "new@example.com").Return("123456", nil)
		sender.EXPECT().Send(gomock.Any(), "new@example.com", "123456").Return(nil)

		svc := NewAuthService(users, codes, sender, mocks.NewMockTokenIssuer(ctrl))

		req.NoError(svc.SendEmailCode(context.Background(), "new@example.com"))
	})

	t.Run("refuses an already registered email", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)
		sender := mocks.NewMockEmailSender(ctrl)

		users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
			Return(domain.User{ID: 1, Email: "taken@example.com"}, nil)
		codes.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

		svc := NewAuthService(users, codes, sender, mocks.NewMockTokenIssuer(ctrl))

		err := svc.SendEmailCode(context.Background(), "taken@example.com")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "test@example.com"
	password := "ComplexPass123!"

	t.Run("registers and signs in when code and input are valid", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)
		issuer := mocks.NewMockTokenIssuer(ctrl)

		stored := domain.User{ID: 42, Email: email, Fullname: "Test User"}
		codes.EXPECT().Verify(gomock.Any(), email, "123456").Return(true, nil)
		// The repository must receive a hash, never the plain password.
		users.EXPECT().
			Create(gomock.Any(), email, gomock.Not(password), "Test User").
			Return(stored, nil)
		issuer.EXPECT().Sign(int64(42)).Return("signed-token", nil)

		svc := NewAuthService(users, codes, mocks.NewMockEmailSender(ctrl), issuer)

		token, user, err := svc.Register(context.Background(), email, "123456", password, "Test User")
		req.NoError(err)
		req.Equal("signed-token", token)
		req.Equal(stored, user)
	})

	t.Run("rejects a wrong email code", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)

		codes.EXPECT().Verify(gomock.Any(), email, "000000").Return(false, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := NewAuthService(users, codes, mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		_, _, err := svc.Register(context.Background(), email, "000000", password, "Test User")
		req.ErrorIs(err, errors.ErrEmailCodeIncorrect)
	})

	t.Run("rejects a weak password before touching the repository", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)

		codes.EXPECT().Verify(gomock.Any(), email, "123456").Return(true, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := NewAuthService(users, codes, mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		_, _, err := svc.Register(context.Background(), email, "123456", "nodigitsoruppercase", "Test User")
		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("propagates a duplicate user", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		codes := mocks.NewMockIEmailCodeStore(ctrl)

		codes.EXPECT().Verify(gomock.Any(), email, "123456").Return(true, nil)
		users.EXPECT().
			Create(gomock.Any(), email, gomock.Any(), "Test User").
			Return(domain.User{}, errors.ErrUserAlreadyExists)

		svc := NewAuthService(users, codes, mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		_, _, err := svc.Register(context.Background(), email, "123456", password, "Test User")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "user@example.com"
	password := "Secret123456!"

	t.Run("signs in with correct credentials", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		issuer := mocks.NewMockTokenIssuer(ctrl)

		hash, err := auth.HashPassword(password)
		req.NoError(err)
		stored := domain.User{ID: 7, Email: email, PasswordHash: hash}

		users.EXPECT().FindByEmail(gomock.Any(), email).Return(stored, nil)
		issuer.EXPECT().Sign(int64(7)).Return("signed-token", nil)

		svc := NewAuthService(users, mocks.NewMockIEmailCodeStore(ctrl), mocks.NewMockEmailSender(ctrl), issuer)

		token, user, err := svc.Login(context.Background(), email, password)
		req.NoError(err)
		req.Equal("signed-token", token)
		req.Equal(int64(7), user.ID)
	})

	t.Run("answers the same for wrong password and unknown user", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)

		hash, err := auth.HashPassword(password)
		req.NoError(err)

		users.EXPECT().FindByEmail(gomock.Any(), email).
			Return(domain.User{ID: 7, Email: email, PasswordHash: hash}, nil)
		users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(domain.User{}, errors.ErrUserNotFound)

		svc := NewAuthService(users, mocks.NewMockIEmailCodeStore(ctrl), mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		_, _, err = svc.Login(context.Background(), email, "WrongPassword1!")
		req.ErrorIs(err, errors.ErrInvalidCredentials)

		_, _, err = svc.Login(context.Background(), "ghost@example.com", password)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists every registered user", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)

		all := []domain.User{
			{ID: 1, Email: "a@example.com", Fullname: "Alice"},
			{ID: 2, Email: "b@example.com", Fullname: "Bob"},
		}
		users.EXPECT().ListAll(gomock.Any()).Return(all, nil)

		svc := NewAuthService(users, mocks.NewMockIEmailCodeStore(ctrl),
			mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		got, err := svc.ListUsers(context.Background())
		req.NoError(err)
		req.Equal(all, got)
	})

	t.Run("self resolves the caller's profile", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)

		me := domain.User{ID: 3, Email: "me@example.com", Fullname: "Me"}
		users.EXPECT().FindByID(gomock.Any(), int64(3)).Return(me, nil)

		svc := NewAuthService(users, mocks.NewMockIEmailCodeStore(ctrl),
			mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		got, err := svc.Self(context.Background(), 3)
		req.NoError(err)
		req.Equal(me, got)
	})

	t.Run("self surfaces a missing user", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)

		users.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(domain.User{}, errors.ErrUserNotFound)

		svc := NewAuthService(users, mocks.NewMockIEmailCodeStore(ctrl),
			mocks.NewMockEmailSender(ctrl), mocks.NewMockTokenIssuer(ctrl))

		_, err := svc.Self(context.Background(), 404)
		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}
