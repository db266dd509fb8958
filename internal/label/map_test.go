package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapFirstWins(t *testing.T) {
	tokens := []Token{
		{Text: "how", Label: Root, Head: 0},
		{Text: "are", Label: State, Head: 2},
		{Text: "you", Label: Target, Head: 0},
		{Text: "feeling", Label: State, Head: 2},
	}

	m := NewMap(tokens)

	state, ok := m.Lookup(State)
	require.True(t, ok)
	assert.Equal(t, "are", state.Text)
	assert.Equal(t, 3, m.Len())
}

func TestNewMapDuplicateRoot(t *testing.T) {
	m := NewMap([]Token{
		{Text: "sing", Label: Root},
		{Text: "hi", Label: Root},
	})

	root, ok := m.Lookup(Root)
	require.True(t, ok)
	assert.Equal(t, "sing", root.Text)
}

func TestMapMissingLabel(t *testing.T) {
	m := NewMap([]Token{{Text: "nice", Label: Quality}})

	_, ok := m.Lookup(Root)
	assert.False(t, ok)
	assert.False(t, m.Has(Obj))
	assert.True(t, m.Has(Quality))
}

func TestMapEmpty(t *testing.T) {
	m := NewMap(nil)
	assert.Equal(t, 0, m.Len())
	_, ok := m.Lookup(Root)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{in: "ROOT", want: Root},
		{in: "obj", want: Obj},
		{in: " TARGET ", want: Target},
		{in: "-", want: NoRelation},
		{in: "PLACE", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
