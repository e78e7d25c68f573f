package conversation

import "github.com/abhisek/lingo/internal/backend"

// replyMsg is sent when a /converse/ request finishes. Seq is the pane-local
// sequence number of the submission that issued it.
type replyMsg struct {
	Seq   int
	Reply *backend.ConverseReply
	Err   error
}
