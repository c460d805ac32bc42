package kotlincomment

import (
	"context"
	"reflect"
	"testing"
)

func collect(t *testing.T, source string) []Comment {
	t.Helper()
	comments, err := Collect(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	return comments
}

func TestCollect(t *testing.T) {
	source := `// first line comment
fun main() {
    /* block
       comment */
    val s = "// not a comment"
}
`
	comments := collect(t, source)

	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d: %+v", len(comments), comments)
	}

	if comments[0].Block {
		t.Error("first comment should be a line comment")
	}
	if comments[0].Text != " first line comment" {
		t.Errorf("first comment text = %q", comments[0].Text)
	}
	if comments[0].Row != 0 {
		t.Errorf("first comment row = %d, want 0", comments[0].Row)
	}

	if !comments[1].Block {
		t.Error("second comment should be a block comment")
	}
	if comments[1].Text != " block\n       comment " {
		t.Errorf("second comment text = %q", comments[1].Text)
	}
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name     string
		comments []Comment
		expected []string
	}{
		{
			name:     "no comments",
			comments: nil,
			expected: nil,
		},
		{
			name: "adjacent line comments merge",
			comments: []Comment{
				{Text: " a", Row: 0},
				{Text: " b", Row: 1},
			},
			expected: []string{" a\n b"},
		},
		{
			name: "gap splits runs",
			comments: []Comment{
				{Text: " a", Row: 0},
				{Text: " b", Row: 5},
			},
			expected: []string{" a", " b"},
		},
		{
			name: "block comments stand alone",
			comments: []Comment{
				{Text: " a", Row: 0},
				{Text: " big ", Row: 1, Block: true},
				{Text: " b", Row: 4},
			},
			expected: []string{" a", " big ", " b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.comments)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Blocks = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	dirty := []byte("fun main() {\x00}")
	clean := Sanitize(dirty)
	if string(clean) != "fun main() { }" {
		t.Errorf("Sanitize = %q", clean)
	}

	// No allocation path: untouched input comes back as-is.
	plain := []byte("fun main() {}")
	if &plain[0] != &Sanitize(plain)[0] {
		t.Error("Sanitize should return clean input unchanged")
	}
}
