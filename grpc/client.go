package bridgegrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/chainapi/bridge"
)

// Compile-time interface check.
var _ bridge.HostBridge = (*Client)(nil)

// Client implements bridge.HostBridge for a host running in another
// process, reached over gRPC with cramberry serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote host bridge.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("bridge client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) Request(ctx context.Context, args bridge.RequestArgs) (string, error) {
	resp := new(Response)
	if err := c.cc.Invoke(ctx, fullMethod("Request"), &args, resp); err != nil {
		return "", err
	}
	return resp.Body, nil
}
