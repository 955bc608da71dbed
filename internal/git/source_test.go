package git

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSourceTrimsWhitespace(t *testing.T) {
	t.Parallel()

	messages, err := MessageSource{Message: "  feat: add login\n"}.Messages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"feat: add login"}, messages)
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := "feat: add login\n\nSome body.\n# Please enter the commit message\n"
	require.NoError(t, afero.WriteFile(fs, "/repo/.git/COMMIT_EDITMSG", []byte(content), 0o644))

	messages, err := FileSource{Fs: fs, Path: "/repo/.git/COMMIT_EDITMSG"}.Messages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "feat: add login\n\nSome body.", messages[0])
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := FileSource{Fs: afero.NewMemMapFs(), Path: "/nope"}.Messages(context.Background())
	assert.Error(t, err)
}

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "comment lines removed",
			input: "feat: add login\n# comment\nbody line\n",
			want:  "feat: add login\nbody line",
		},
		{
			name: "scissors diff removed",
			input: "feat: add login\n" +
				"# ------------------------ >8 ------------------------\n" +
				"diff --git a/x b/x\n",
			want: "feat: add login",
		},
		{
			name:  "plain message untouched",
			input: "feat: add login",
			want:  "feat: add login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripComments(tt.input))
		})
	}
}
