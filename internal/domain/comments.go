package domain

import "strings"

// CommentBatch is the comment payload derived from operator input.
type CommentBatch struct {
	Lines []string
}

// BuildCommentBatch splits raw on newlines and keeps trimmed non-blank lines
// in input order. It never fails.
func BuildCommentBatch(raw string) CommentBatch {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return CommentBatch{Lines: lines}
}

func (b CommentBatch) Count() int { return len(b.Lines) }

// Payload is the newline-joined wire form panels expect for custom comments.
func (b CommentBatch) Payload() string { return strings.Join(b.Lines, "\n") }
