package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/chatbotely/internal/label"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.NotEmpty(t, c.Examples)
	assert.NotEmpty(t, c.Samples)
	require.NoError(t, c.Validate())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "hi there", want: []string{"hi", "there"}},
		{in: "  Hello,   bot! ", want: []string{"Hello", "bot"}},
		{in: "I'm fine", want: []string{"I'm", "fine"}},
		{in: "ding-ding dong", want: []string{"ding-ding", "dong"}},
		{in: "?!", want: []string{}},
		{in: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Tokenize(tt.in)); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExampleValidate(t *testing.T) {
	tests := []struct {
		name    string
		ex      Example
		wantErr string
	}{
		{
			name: "aligned",
			ex:   Example{Text: "how are you", Heads: []int{0, 2, 0}, Deps: []string{"ROOT", "STATE", "TARGET"}},
		},
		{
			name:    "too many heads",
			ex:      Example{Text: "tell me something inspiring", Heads: []int{0, 0, 2, 3, 4, 0, 0}, Deps: []string{"ROOT", "TARGET", "-", "QUALITY"}},
			wantErr: "7 heads for 4 tokens",
		},
		{
			name:    "too many deps",
			ex:      Example{Text: "inspire me with something", Heads: []int{0, 0, 3, 0}, Deps: []string{"ROOT", "TARGET", "-", "-", "-"}},
			wantErr: "5 deps for 4 tokens",
		},
		{
			name:    "head out of range",
			ex:      Example{Text: "hi", Heads: []int{3}, Deps: []string{"ROOT"}},
			wantErr: "head 3 out of range",
		},
		{
			name:    "unknown label",
			ex:      Example{Text: "find a hotel", Heads: []int{0, 2, 0}, Deps: []string{"ROOT", "-", "PLACE"}},
			wantErr: "unknown dependency label",
		},
		{
			name:    "empty",
			ex:      Example{Text: "  "},
			wantErr: "empty text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ex.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExampleTokens(t *testing.T) {
	ex := Example{Text: "tell me a quote", Heads: []int{0, 0, 3, 0}, Deps: []string{"ROOT", "TARGET", "-", "OBJ"}}

	got, err := ex.Tokens()
	require.NoError(t, err)

	want := []label.Token{
		{Text: "tell", Label: label.Root, Head: 0},
		{Text: "me", Label: label.Target, Head: 0},
		{Text: "a", Label: label.NoRelation, Head: 3},
		{Text: "quote", Label: label.Obj, Head: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
examples:
  - text: hi
    heads: [0]
    deps: [ROOT]
samples: [hi]
`), 0600))

	c, err := Load(good)
	require.NoError(t, err)
	assert.Len(t, c.Examples, 1)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`examples: []`), 0600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "no examples")

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, len(Default().Examples), len(c.Examples))
}
