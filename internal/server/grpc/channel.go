package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mizukilab/gochat/internal/common"
	chatpb "github.com/mizukilab/gochat/internal/proto"
)

func (s *GRPCServer) CreateChannel(ctx context.Context, req *chatpb.CreateChannelRequest) (*chatpb.CreateChannelResponse, error) {

	channel, err := s.channels.Create(ctx, req.Token, req.Name, req.Description, req.IsPrivate)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthenticated) {
			return &chatpb.CreateChannelResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.CreateChannelResponse{Success: true, Channel: channelToPb(channel)}, nil

}

func (s *GRPCServer) ListChannels(ctx context.Context, req *chatpb.ListChannelsRequest) (*chatpb.ListChannelsResponse, error) {

	channels, err := s.channels.List(ctx, req.Token)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*chatpb.Channel, 0, len(channels))
	for _, c := range channels {
		out = append(out, channelToPb(c))
	}
	return &chatpb.ListChannelsResponse{Channels: out}, nil

}

func (s *GRPCServer) GetChannel(ctx context.Context, req *chatpb.GetChannelRequest) (*chatpb.GetChannelResponse, error) {

	channel, err := s.channels.Get(ctx, req.Token, req.ChannelId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.GetChannelResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.GetChannelResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotAMember):
			return &chatpb.GetChannelResponse{Success: false, ErrorMessage: msgNoChannelAccess}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.GetChannelResponse{Success: true, Channel: channelToPb(channel)}, nil

}

func (s *GRPCServer) UpdateChannel(ctx context.Context, req *chatpb.UpdateChannelRequest) (*chatpb.UpdateChannelResponse, error) {

	channel, err := s.channels.Update(ctx, req.Token, req.ChannelId, req.Name, req.Description)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.UpdateChannelResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.UpdateChannelResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.UpdateChannelResponse{Success: false, ErrorMessage: msgCreatorOnlyUpdate}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.UpdateChannelResponse{Success: true, Channel: channelToPb(channel)}, nil

}

func (s *GRPCServer) DeleteChannel(ctx context.Context, req *chatpb.DeleteChannelRequest) (*chatpb.DeleteChannelResponse, error) {

	err := s.channels.Delete(ctx, req.Token, req.ChannelId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.DeleteChannelResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.DeleteChannelResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.DeleteChannelResponse{Success: false, ErrorMessage: msgCreatorOnlyDelete}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.DeleteChannelResponse{Success: true}, nil

}

func (s *GRPCServer) AddChannelMember(ctx context.Context, req *chatpb.AddChannelMemberRequest) (*chatpb.AddChannelMemberResponse, error) {

	err := s.channels.AddMember(ctx, req.Token, req.ChannelId, req.UserId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.AddChannelMemberResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.AddChannelMemberResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.AddChannelMemberResponse{Success: false, ErrorMessage: msgCreatorOnlyAddMember}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.AddChannelMemberResponse{Success: true}, nil

}

func (s *GRPCServer) RemoveChannelMember(ctx context.Context, req *chatpb.RemoveChannelMemberRequest) (*chatpb.RemoveChannelMemberResponse, error) {

	err := s.channels.RemoveMember(ctx, req.Token, req.ChannelId, req.UserId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.RemoveChannelMemberResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.RemoveChannelMemberResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.RemoveChannelMemberResponse{Success: false, ErrorMessage: msgCreatorOnlyRemoveMember}, nil
		case errors.Is(err, common.ErrorCreatorRemoval):
			return &chatpb.RemoveChannelMemberResponse{Success: false, ErrorMessage: msgCreatorNotRemovable}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.RemoveChannelMemberResponse{Success: true}, nil

}
