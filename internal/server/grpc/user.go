package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mizukilab/gochat/internal/common"
	chatpb "github.com/mizukilab/gochat/internal/proto"
)

func (s *GRPCServer) ListUsers(ctx context.Context, req *chatpb.ListUsersRequest) (*chatpb.ListUsersResponse, error) {

	users, err := s.users.List(ctx, req.Token)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*chatpb.User, 0, len(users))
	for _, u := range users {
		out = append(out, userToPb(u))
	}
	return &chatpb.ListUsersResponse{Users: out}, nil

}

func (s *GRPCServer) GetUser(ctx context.Context, req *chatpb.GetUserRequest) (*chatpb.GetUserResponse, error) {

	user, err := s.users.Get(ctx, req.Token, req.UserId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.GetUserResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorUserNotFound):
			return &chatpb.GetUserResponse{Success: false, ErrorMessage: msgUserNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.GetUserResponse{Success: true, User: userToPb(user)}, nil

}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *chatpb.UpdateUserRequest) (*chatpb.UpdateUserResponse, error) {

	user, err := s.users.Update(ctx, req.Token, req.UserId, req.DisplayName)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.UpdateUserResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.UpdateUserResponse{Success: false, ErrorMessage: msgOwnProfileOnly}, nil
		case errors.Is(err, common.ErrorUserNotFound):
			return &chatpb.UpdateUserResponse{Success: false, ErrorMessage: msgUserNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.UpdateUserResponse{Success: true, User: userToPb(user)}, nil

}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *chatpb.DeleteUserRequest) (*chatpb.DeleteUserResponse, error) {

	err := s.users.Delete(ctx, req.Token, req.UserId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.DeleteUserResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.DeleteUserResponse{Success: false, ErrorMessage: msgOwnAccountOnlyDelete}, nil
		case errors.Is(err, common.ErrorUserNotFound):
			return &chatpb.DeleteUserResponse{Success: false, ErrorMessage: msgUserNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.DeleteUserResponse{Success: true}, nil

}

func (s *GRPCServer) SetUserActive(ctx context.Context, req *chatpb.SetUserActiveRequest) (*chatpb.SetUserActiveResponse, error) {

	err := s.users.SetActive(ctx, req.Token, req.UserId, req.IsActive)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.SetUserActiveResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.SetUserActiveResponse{Success: false, ErrorMessage: msgOwnAccountOnlyChange}, nil
		case errors.Is(err, common.ErrorUserNotFound):
			return &chatpb.SetUserActiveResponse{Success: false, ErrorMessage: msgUserNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.SetUserActiveResponse{Success: true}, nil

}
