package discuss_test

import (
	"testing"

	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThread(t *testing.T) {
	t.Parallel()

	thread := discuss.NewThread()

	assert.Equal(t, []string{"Post muito bacana, hein?!"}, thread.Comments)
	assert.Empty(t, thread.Draft)
	assert.Empty(t, thread.Validation)
	assert.True(t, thread.SubmitDisabled())
}

func TestThread_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		comments []string
		draft    string
		expected []string
	}{
		{
			name:     "appends to the end",
			comments: []string{"a", "b"},
			draft:    "c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "keeps duplicates",
			comments: []string{"a"},
			draft:    "a",
			expected: []string{"a", "a"},
		},
		{
			name:     "does not trim",
			comments: []string{},
			draft:    "  spaced  ",
			expected: []string{"  spaced  "},
		},
		{
			name:     "whitespace only is not empty",
			comments: nil,
			draft:    " ",
			expected: []string{" "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			thread := discuss.Thread{Comments: tt.comments, Draft: tt.draft}

			result := thread.Submit()

			assert.Equal(t, tt.expected, result.Comments)
			assert.Empty(t, result.Draft)
			assert.Empty(t, result.Validation)
			assert.True(t, result.SubmitDisabled())
		})
	}
}

func TestThread_SubmitEmpty(t *testing.T) {
	t.Parallel()

	thread := discuss.Thread{Comments: []string{"a", "b"}}

	result := thread.Submit()

	assert.Equal(t, []string{"a", "b"}, result.Comments)
	assert.Equal(t, discuss.RequiredMessage, result.Validation)
	assert.Empty(t, result.Draft)
}

func TestThread_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		comments []string
		text     string
		expected []string
	}{
		{
			name:     "removes the matching comment",
			comments: []string{"a", "b", "c"},
			text:     "b",
			expected: []string{"a", "c"},
		},
		{
			name:     "removes every duplicate",
			comments: []string{"a", "a", "b"},
			text:     "a",
			expected: []string{"b"},
		},
		{
			name:     "missing value is a no-op",
			comments: []string{"a", "b"},
			text:     "z",
			expected: []string{"a", "b"},
		},
		{
			name:     "compares whole values",
			comments: []string{"a", "ab"},
			text:     "a",
			expected: []string{"ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			thread := discuss.Thread{Comments: tt.comments}

			result := thread.Delete(tt.text)

			assert.Equal(t, tt.expected, result.Comments)
		})
	}
}

func TestThread_TransitionsDoNotMutate(t *testing.T) {
	t.Parallel()

	comments := make([]string, 3, 10)
	copy(comments, []string{"a", "a", "b"})

	original := discuss.Thread{Comments: comments, Draft: "c"}

	_ = original.Submit()
	_ = original.Delete("a")
	_ = original.EditDraft("d")
	_ = original.Reject()

	assert.Equal(t, []string{"a", "a", "b"}, original.Comments)
	assert.Equal(t, []string{"a", "a", "b"}, comments[:3])
	assert.Equal(t, "c", original.Draft)
	assert.Empty(t, original.Validation)

	submitted := original.Submit()
	deleted := original.Delete("a")

	assert.Equal(t, []string{"a", "a", "b", "c"}, submitted.Comments)
	assert.Equal(t, []string{"b"}, deleted.Comments)
}

func TestThread_EditDraftClearsValidation(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "L", "Legal!"} {
		rejected := discuss.Thread{Comments: []string{"a"}}.Reject()
		require.Equal(t, discuss.RequiredMessage, rejected.Validation)

		result := rejected.EditDraft(text)

		assert.Empty(t, result.Validation)
		assert.Equal(t, text, result.Draft)
		assert.Equal(t, text == "", result.SubmitDisabled())
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("comment scenario", func(t *testing.T) {
		t.Parallel()

		thread := discuss.NewThread()

		thread = discuss.Update(thread, discuss.DraftEdited{Text: "Legal!"})
		assert.Equal(t, "Legal!", thread.Draft)
		assert.False(t, thread.SubmitDisabled())

		thread = discuss.Update(thread, discuss.CommentSubmitted{})
		assert.Equal(t, []string{"Post muito bacana, hein?!", "Legal!"}, thread.Comments)
		assert.Empty(t, thread.Draft)
		assert.True(t, thread.SubmitDisabled())
	})

	t.Run("delete seed", func(t *testing.T) {
		t.Parallel()

		thread := discuss.Update(
			discuss.NewThread(),
			discuss.DeleteCommentRequested{Text: "Post muito bacana, hein?!"},
		)

		assert.Empty(t, thread.Comments)
	})

	t.Run("rejected submission", func(t *testing.T) {
		t.Parallel()

		thread := discuss.Update(discuss.NewThread(), discuss.SubmitRejected{})
		assert.Equal(t, "Esse campo é obrigatório!", thread.Validation)
		assert.Equal(t, []string{discuss.SeedComment}, thread.Comments)

		thread = discuss.Update(thread, discuss.DraftEdited{Text: "L"})
		assert.Empty(t, thread.Validation)
	})

	t.Run("submit button follows draft", func(t *testing.T) {
		t.Parallel()

		msgs := []discuss.Message{
			discuss.DraftEdited{Text: "a"},
			discuss.DraftEdited{Text: ""},
			discuss.SubmitRejected{},
			discuss.DraftEdited{Text: "b"},
			discuss.CommentSubmitted{},
			discuss.DeleteCommentRequested{Text: "b"},
			discuss.CommentSubmitted{},
		}

		thread := discuss.NewThread()

		for _, msg := range msgs {
			thread = discuss.Update(thread, msg)
			assert.Equal(t, thread.Draft == "", thread.SubmitDisabled())
		}
	})
}
