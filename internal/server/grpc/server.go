package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/mizukilab/gochat/internal/logging"
	chatpb "github.com/mizukilab/gochat/internal/proto"
	"github.com/mizukilab/gochat/internal/server/services"
)

// GRPCServer exposes the chat services over gRPC. All expected-outcome
// failures are reported in-band through the response messages; only
// persistence faults surface as gRPC status errors.
type GRPCServer struct {
	chatpb.UnimplementedAuthServiceServer
	chatpb.UnimplementedChannelServiceServer
	chatpb.UnimplementedMessageServiceServer
	chatpb.UnimplementedUserServiceServer

	address  string
	auth     *services.AuthService
	channels *services.ChannelService
	messages *services.MessageService
	users    *services.UserService
	logger   logging.Logger

	// closed on shutdown so long-lived stream handlers return before
	// GracefulStop starts waiting for them
	stopping chan struct{}
}

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService, cs *services.ChannelService, ms *services.MessageService, us *services.UserService) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		auth:     as,
		channels: cs,
		messages: ms,
		users:    us,
		stopping: make(chan struct{}),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	chatpb.RegisterAuthServiceServer(srv, s)
	chatpb.RegisterChannelServiceServer(srv, s)
	chatpb.RegisterMessageServiceServer(srv, s)
	chatpb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		// GracefulStop waits for in-flight RPCs, and it does not cancel
		// stream contexts. Open subscription streams have to be released
		// first or the stop would never complete.
		close(s.stopping)
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
