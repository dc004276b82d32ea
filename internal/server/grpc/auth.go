package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mizukilab/gochat/internal/common"
	chatpb "github.com/mizukilab/gochat/internal/proto"
)

func (s *GRPCServer) Login(ctx context.Context, req *chatpb.LoginRequest) (*chatpb.LoginResponse, error) {

	token, user, err := s.auth.Login(ctx, req.Username, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidCredentials):
			return &chatpb.LoginResponse{Success: false, ErrorMessage: msgBadCredentials}, nil
		case errors.Is(err, common.ErrorUserDeactivated):
			return &chatpb.LoginResponse{Success: false, ErrorMessage: msgUserDeactivated}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Logged in", "username", req.Username)
	return &chatpb.LoginResponse{Success: true, Token: token, User: userToPb(user)}, nil

}

func (s *GRPCServer) Logout(ctx context.Context, req *chatpb.LogoutRequest) (*chatpb.LogoutResponse, error) {

	if err := s.auth.Logout(ctx, req.Token); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.LogoutResponse{Success: true}, nil

}

func (s *GRPCServer) ValidateToken(ctx context.Context, req *chatpb.ValidateTokenRequest) (*chatpb.ValidateTokenResponse, error) {

	user, err := s.auth.Validate(ctx, req.Token)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthenticated) {
			return &chatpb.ValidateTokenResponse{Valid: false}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.ValidateTokenResponse{Valid: true, User: userToPb(user)}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *chatpb.RegisterRequest) (*chatpb.RegisterResponse, error) {

	user, err := s.auth.Register(ctx, req.Username, req.Password, req.DisplayName)

	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return &chatpb.RegisterResponse{Success: false, ErrorMessage: msgUsernameTaken}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &chatpb.RegisterResponse{Success: true, User: userToPb(user)}, nil

}
