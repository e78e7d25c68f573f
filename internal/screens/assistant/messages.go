package assistant

import "github.com/abhisek/lingo/internal/backend"

// replyMsg is sent when an /assist/ request finishes.
type replyMsg struct {
	Seq   int
	Reply *backend.AssistReply
	Err   error
}
