package bridgegrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chainapi/bridge"

	"google.golang.org/grpc"
)

const serviceName = "chainapi.v1.HostBridge"

// HostBridgeServer is the server-side interface for the host bridge
// gRPC service.
type HostBridgeServer interface {
	Request(context.Context, *bridge.RequestArgs) (*Response, error)
}

// RegisterHostBridgeServer registers the HostBridgeServer on a gRPC server.
func RegisterHostBridgeServer(s *grpc.Server, srv HostBridgeServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerRequest(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(bridge.RequestArgs)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostBridgeServer).Request(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fullMethod("Request"),
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostBridgeServer).Request(ctx, req.(*bridge.RequestArgs))
	}
	return interceptor(ctx, req, info, handler)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the host bridge.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*HostBridgeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Request", Handler: handlerRequest},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chainapi/v1/bridge.cram",
}
