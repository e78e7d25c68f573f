package backend

import "context"

type contextKey string

const tagKey contextKey = "backend_request_tag"

// Tag identifies which pane issued a request and its per-pane sequence
// number. It is carried on the context for event logging only.
type Tag struct {
	Pane string
	Seq  int
}

// WithTag attaches a request tag to the context.
func WithTag(ctx context.Context, tag Tag) context.Context {
	return context.WithValue(ctx, tagKey, tag)
}

// TagFrom extracts the request tag from the context.
func TagFrom(ctx context.Context) Tag {
	if v, ok := ctx.Value(tagKey).(Tag); ok {
		return v
	}
	return Tag{Pane: "unknown"}
}
