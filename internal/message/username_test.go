package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		want      string
		wantFound bool
	}{
		{
			name:      "name with email",
			line:      "Co-authored-by: Cursor <noreply@cursor.com>",
			want:      "Cursor",
			wantFound: true,
		},
		{
			name:      "same name different email",
			line:      "Co-authored-by: Cursor <cursoragent@cursor.com>",
			want:      "Cursor",
			wantFound: true,
		},
		{
			name:      "multi word name",
			line:      "Signed-off-by:   AI Assistant   <ai@example.com>",
			want:      "AI Assistant",
			wantFound: true,
		},
		{
			name:      "bare name without email",
			line:      "Co-developed-by: John Doe",
			want:      "John Doe",
			wantFound: true,
		},
		{
			name:      "email only value",
			line:      "Co-authored-by: <noreply@cursor.com>",
			wantFound: false,
		},
		{
			name:      "empty value",
			line:      "Co-authored-by:   ",
			wantFound: false,
		},
		{
			name:      "not a trailer line",
			line:      "just some prose",
			wantFound: false,
		},
		{
			name:      "empty line",
			line:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := ExtractUsername(tt.line)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUsernameEmailsAreIgnored(t *testing.T) {
	t.Parallel()

	a, _ := ExtractUsername("Co-authored-by: Cursor <noreply@cursor.com>")
	b, _ := ExtractUsername("Co-authored-by: Cursor <cursoragent@cursor.com>")

	assert.Equal(t, a, b)
}
