package chainapitest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/blockberries/chainapi/baseapi"
)

// StartHTTP serves node over HTTP for the lifetime of the test and
// returns its URL.
func StartHTTP(t *testing.T, node *FakeNode) string {
	t.Helper()
	srv, err := node.Server()
	if err != nil {
		t.Fatalf("fake node: %v", err)
	}
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})
	return hs.URL
}

// StartWS serves node over WebSocket for the lifetime of the test and
// returns its ws:// URL.
func StartWS(t *testing.T, node *FakeNode) string {
	t.Helper()
	srv, err := node.Server()
	if err != nil {
		t.Fatalf("fake node: %v", err)
	}
	hs := httptest.NewServer(srv.WebsocketHandler([]string{"*"}))
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})
	return "ws" + strings.TrimPrefix(hs.URL, "http")
}

// DialInProc returns a base API client connected to node without any
// network transport.
func DialInProc(t *testing.T, node *FakeNode, opts ...baseapi.Option) *baseapi.Client {
	t.Helper()
	srv, err := node.Server()
	if err != nil {
		t.Fatalf("fake node: %v", err)
	}
	c, err := baseapi.NewClient(rpc.DialInProc(srv), opts...)
	if err != nil {
		srv.Stop()
		t.Fatalf("base client: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
		srv.Stop()
	})
	return c
}
