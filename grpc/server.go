package bridgegrpc

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/blockberries/chainapi/bridge"
)

// Compile-time interface check.
var _ HostBridgeServer = (*GRPCServer)(nil)

// GRPCServer exposes a host bridge to remote clients.
type GRPCServer struct {
	host bridge.HostBridge
	log  *zap.Logger
}

// NewGRPCServer creates a gRPC server serving requests from host.
// A nil logger disables logging.
func NewGRPCServer(host bridge.HostBridge, log *zap.Logger) *GRPCServer {
	if log == nil {
		log = zap.NewNop()
	}
	return &GRPCServer{host: host, log: log}
}

// Register adds the host bridge service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterHostBridgeServer(gs, s)
}

// Serve starts a gRPC server on the given listener. It blocks until the
// server stops.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

func (s *GRPCServer) Request(ctx context.Context, req *bridge.RequestArgs) (*Response, error) {
	body, err := s.host.Request(ctx, *req)
	if err != nil {
		s.log.Debug("host request failed",
			zap.String("method", req.Method),
			zap.Error(err),
		)
		return nil, err
	}
	return &Response{Body: body}, nil
}
