package server

import (
	"context"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"ichat/domain"
	"ichat/errors"
	pb "ichat/proto/account"
	"ichat/services"
)

type AccountServer struct {
	pb.UnimplementedAccountServiceServer
	authService services.IAuthService
}

func NewAccountServer(authService services.IAuthService) *AccountServer {
	return &AccountServer{authService: authService}
}

func (s *AccountServer) SendEmailCode(ctx context.Context, in *pb.SendEmailCodeRequest) (*pb.SendEmailCodeResponse, error) {
	if err := s.authService.SendEmailCode(ctx, in.GetEmail()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendEmailCodeResponse{Sent: true}, nil
}

func (s *AccountServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, user, err := s.authService.Register(ctx,
		in.GetEmail(), in.GetCode(), in.GetPassword(), in.GetFullname())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: token, User: toUser(user)}, nil
}

func (s *AccountServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, user, err := s.authService.Login(ctx, in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: token, User: toUser(user)}, nil
}

func (s *AccountServer) GetUsers(ctx context.Context, _ *pb.GetUsersRequest) (*pb.GetUsersResponse, error) {
	if _, err := identity(ctx); err != nil {
		return nil, err
	}
	users, err := s.authService.ListUsers(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetUsersResponse{
		Users: lo.Map(users, func(user domain.User, _ int) *pb.User { return toUser(user) }),
	}, nil
}

func (s *AccountServer) GetSelf(ctx context.Context, _ *pb.GetSelfRequest) (*pb.UserResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.authService.Self(ctx, userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.UserResponse{User: toUser(user)}, nil
}

func toUser(user domain.User) *pb.User {
	return &pb.User{
		Id:        user.ID,
		Fullname:  user.Fullname,
		Email:     user.Email,
		CreatedAt: timestamppb.New(user.CreatedAt),
	}
}
