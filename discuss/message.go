package discuss

// Message is an event dispatched to a thread.
type Message interface {
	message()
}

// DraftEdited is sent on every change of the comment input.
type DraftEdited struct {
	Text string
}

// CommentSubmitted is sent when the comment form is submitted.
type CommentSubmitted struct{}

// SubmitRejected is sent when the input refuses an empty submission.
type SubmitRejected struct{}

// DeleteCommentRequested is sent by a rendered comment asking to be removed.
type DeleteCommentRequested struct {
	Text string
}

func (DraftEdited) message()            {}
func (CommentSubmitted) message()       {}
func (SubmitRejected) message()         {}
func (DeleteCommentRequested) message() {}

// Update applies msg to t and returns the resulting thread.
func Update(t Thread, msg Message) Thread {
	switch msg := msg.(type) {
	case DraftEdited:
		return t.EditDraft(msg.Text)
	case CommentSubmitted:
		return t.Submit()
	case SubmitRejected:
		return t.Reject()
	case DeleteCommentRequested:
		return t.Delete(msg.Text)
	default:
		return t
	}
}
