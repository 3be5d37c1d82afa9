package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTrailerLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"Signed-off-by: X <x@example.com>", true},
		{"Change-Id: I0123abc", true},
		{"Co-developed-by: Cursor <a@cursor.com>", true},
		{"[skip ci]", true},
		{"(cherry picked from commit abc)", true},
		// A token with no hyphen is prose, not a trailer
		{"Solution: use a mutex", false},
		{"Note: remember this", false},
		{"plain body line", false},
		{"", false},
		{"- list item: with colon", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsTrailerLine(tt.line))
		})
	}
}

func TestInsertTrailersCreatesBlock(t *testing.T) {
	t.Parallel()

	got := InsertTrailers("feat: x", []string{"Change-Id: Iabc"}, "")

	assert.Equal(t, "feat: x\n\nChange-Id: Iabc", got)
}

func TestInsertTrailersBeforeExistingTrailers(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\nbody\n\nSigned-off-by: X <x@example.com>"
	got := InsertTrailers(text, []string{"Change-Id: Iabc"}, "")

	assert.Equal(t, "feat: x\n\nbody\n\nChange-Id: Iabc\nSigned-off-by: X <x@example.com>", got)
}

func TestInsertTrailersAfterExistingChangeId(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\nChange-Id: Iexisting\nSigned-off-by: X <x@example.com>"
	got := InsertTrailers(text, []string{"Co-developed-by: Cursor <a@cursor.com>"}, "Cursor <a@cursor.com>")

	assert.Equal(t,
		"feat: x\n\nChange-Id: Iexisting\nCo-developed-by: Cursor <a@cursor.com>\nSigned-off-by: X <x@example.com>",
		got)
}

func TestInsertTrailersSkipsLeadingComments(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\n[skip ci]\nSigned-off-by: X <x@example.com>"
	got := InsertTrailers(text, []string{"Change-Id: Iabc"}, "")

	assert.Equal(t, "feat: x\n\n[skip ci]\nChange-Id: Iabc\nSigned-off-by: X <x@example.com>", got)
}

func TestInsertTrailersAllCommentsBlock(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\n[skip ci]\n(cherry picked from commit abc)"
	got := InsertTrailers(text, []string{"Change-Id: Iabc"}, "")

	assert.Equal(t, "feat: x\n\n[skip ci]\n(cherry picked from commit abc)\nChange-Id: Iabc", got)
}

func TestInsertTrailersOnlyFinalRunIsBlock(t *testing.T) {
	t.Parallel()

	// The Acked-by paragraph is followed by body prose, so it is content;
	// only the Signed-off-by run at the very end is the trailer block.
	text := "feat: x\n\nAcked-by: A <a@example.com>\nmore body prose\n\nSigned-off-by: X <x@example.com>"
	got := InsertTrailers(text, []string{"Change-Id: Iabc"}, "")

	assert.Equal(t,
		"feat: x\n\nAcked-by: A <a@example.com>\nmore body prose\n\nChange-Id: Iabc\nSigned-off-by: X <x@example.com>",
		got)
}

func TestInsertTrailersParagraphBreakResetsBlock(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\nSigned-off-by: A <a@example.com>\n\nfinal body paragraph"
	got := InsertTrailers(text, []string{"Change-Id: Iabc"}, "")

	// The Signed-off-by line belongs to an earlier paragraph, not the
	// trailer block; the block is empty and gets appended.
	assert.Equal(t,
		"feat: x\n\nSigned-off-by: A <a@example.com>\n\nfinal body paragraph\n\nChange-Id: Iabc",
		got)
}

func TestInsertTrailersDeduplicatesBlock(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\nCo-authored-by: Cursor <noreply@cursor.com>\nCo-authored-by: John Doe <john@example.com>"
	got := InsertTrailers(text,
		[]string{"Co-developed-by: Cursor <cursoragent@cursor.com>"},
		"Cursor <cursoragent@cursor.com>")

	assert.Equal(t,
		"feat: x\n\nCo-developed-by: Cursor <cursoragent@cursor.com>\nCo-authored-by: John Doe <john@example.com>",
		got)
}

func TestInsertTrailersDedupEmptiesBlock(t *testing.T) {
	t.Parallel()

	text := "feat: x\n\nCo-authored-by: Cursor <noreply@cursor.com>"
	got := InsertTrailers(text,
		[]string{"Co-developed-by: Cursor <cursoragent@cursor.com>"},
		"Cursor <cursoragent@cursor.com>")

	assert.Equal(t, "feat: x\n\nCo-developed-by: Cursor <cursoragent@cursor.com>", got)
}

func TestInsertTrailersNoTrailers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "feat: x", InsertTrailers("feat: x", nil, ""))
}

func TestInsertTrailersBothOrdered(t *testing.T) {
	t.Parallel()

	got := InsertTrailers("feat: x",
		[]string{"Change-Id: Iabc", "Co-developed-by: Cursor <a@cursor.com>"},
		"Cursor <a@cursor.com>")

	assert.Equal(t, "feat: x\n\nChange-Id: Iabc\nCo-developed-by: Cursor <a@cursor.com>", got)
}
