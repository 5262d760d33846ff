package discuss

import "slices"

const (
	// SeedComment is the comment every freshly mounted thread starts with.
	SeedComment = "Post muito bacana, hein?!"

	// RequiredMessage is shown when an empty comment is submitted.
	RequiredMessage = "Esse campo é obrigatório!"
)

// Thread is the comment state of one mounted post view.
//
// A Thread is never modified in place: every transition returns a new value
// and leaves the receiver, including its Comments backing array, untouched.
type Thread struct {
	Comments   []string
	Draft      string
	Validation string
}

func NewThread() Thread {
	return Thread{
		Comments:   []string{SeedComment},
		Draft:      "",
		Validation: "",
	}
}

// SubmitDisabled reports whether the submit control must be disabled.
func (t Thread) SubmitDisabled() bool {
	return t.Draft == ""
}

// EditDraft replaces the draft and clears any validation message.
func (t Thread) EditDraft(text string) Thread {
	t.Comments = slices.Clone(t.Comments)
	t.Draft = text
	t.Validation = ""

	return t
}

// Submit appends the draft to the comments and clears it. An empty draft is
// rejected instead.
func (t Thread) Submit() Thread {
	if t.Draft == "" {
		return t.Reject()
	}

	comments := make([]string, 0, len(t.Comments)+1)
	comments = append(comments, t.Comments...)
	comments = append(comments, t.Draft)

	t.Comments = comments
	t.Draft = ""

	return t
}

func (t Thread) Reject() Thread {
	t.Comments = slices.Clone(t.Comments)
	t.Validation = RequiredMessage

	return t
}

// Delete removes every comment equal to text. Comments are identified by
// value, so duplicates go together.
func (t Thread) Delete(text string) Thread {
	t.Comments = slices.DeleteFunc(slices.Clone(t.Comments), func(comment string) bool {
		return comment == text
	})

	return t
}
