package grpc

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mizukilab/gochat/internal/common"
	chatpb "github.com/mizukilab/gochat/internal/proto"
	"github.com/mizukilab/gochat/internal/server/subscriptions"
)

func (s *GRPCServer) SendMessage(ctx context.Context, req *chatpb.SendMessageRequest) (*chatpb.SendMessageResponse, error) {

	message, err := s.messages.Send(ctx, req.Token, req.ChannelId, req.Content)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.SendMessageResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorChannelNotFound):
			return &chatpb.SendMessageResponse{Success: false, ErrorMessage: msgChannelNotFound}, nil
		case errors.Is(err, common.ErrorNotAMember):
			return &chatpb.SendMessageResponse{Success: false, ErrorMessage: msgNoChannelAccess}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.SendMessageResponse{Success: true, Message: messageToPb(message)}, nil

}

func (s *GRPCServer) ListMessages(ctx context.Context, req *chatpb.ListMessagesRequest) (*chatpb.ListMessagesResponse, error) {

	var before *time.Time
	if req.Before > 0 {
		t := time.UnixMilli(req.Before)
		before = &t
	}

	messages, err := s.messages.List(ctx, req.Token, req.ChannelId, int(req.Limit), before)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*chatpb.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageToPb(m))
	}
	return &chatpb.ListMessagesResponse{Messages: out}, nil

}

func (s *GRPCServer) DeleteMessage(ctx context.Context, req *chatpb.DeleteMessageRequest) (*chatpb.DeleteMessageResponse, error) {

	err := s.messages.Delete(ctx, req.Token, req.MessageId)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated):
			return &chatpb.DeleteMessageResponse{Success: false, ErrorMessage: msgInvalidToken}, nil
		case errors.Is(err, common.ErrorMessageNotFound):
			return &chatpb.DeleteMessageResponse{Success: false, ErrorMessage: msgMessageNotFound}, nil
		case errors.Is(err, common.ErrorNotOwner):
			return &chatpb.DeleteMessageResponse{Success: false, ErrorMessage: msgOwnMessageOnly}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &chatpb.DeleteMessageResponse{Success: true}, nil

}

// streamEndpoint adapts a server stream to the registry's delivery handle.
// Broadcasts for one channel can run concurrently and SendMsg is not safe
// for concurrent use, so sends are serialized.
type streamEndpoint struct {
	mu     sync.Mutex
	stream chatpb.MessageService_SubscribeMessagesServer
}

func (e *streamEndpoint) Send(event subscriptions.Event) error {
	eventType := chatpb.EventType_MESSAGE_SENT
	if event.Type == subscriptions.EventDeleted {
		eventType = chatpb.EventType_MESSAGE_DELETED
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stream.Send(&chatpb.MessageEvent{
		EventType: eventType,
		Message:   messageToPb(event.Message),
	})
}

// SubscribeMessages holds the stream open until the client goes away or the
// server shuts down; the stream context does not observe GracefulStop, so
// shutdown is watched separately. A caller that fails the access checks
// gets a stream that ends immediately with no events, same as an empty
// channel.
func (s *GRPCServer) SubscribeMessages(req *chatpb.SubscribeMessagesRequest, stream chatpb.MessageService_SubscribeMessagesServer) error {

	ctx := stream.Context()

	endpoint := &streamEndpoint{stream: stream}

	detach, err := s.messages.Subscribe(ctx, req.Token, req.ChannelId, endpoint)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthenticated),
			errors.Is(err, common.ErrorChannelNotFound),
			errors.Is(err, common.ErrorNotAMember):
			return nil
		}
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
	defer detach()

	select {
	case <-ctx.Done():
	case <-s.stopping:
	}
	return nil

}
