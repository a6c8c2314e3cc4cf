package bridgegrpc

// Response carries the raw host response body back to the caller.
// The request side needs no wrapper: bridge.RequestArgs crosses the
// wire as is.
type Response struct {
	Body string `cramberry:"1"`
}
