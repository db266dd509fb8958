package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex := Default()

	assert.True(t, lex.Sets.Greetings.Contains("hi"))
	assert.True(t, lex.Sets.Greetings.Contains("HELLO"))
	assert.True(t, lex.Sets.Farewells.Contains("goodbye"))
	assert.True(t, lex.Sets.RequestVerbs.Contains("tell"))
	assert.True(t, lex.Sets.QuoteNouns.Contains("quote"))
	assert.True(t, lex.Sets.SongVerbs.Contains("sing"))
	assert.True(t, lex.Sets.SelfTargets.Contains("you"))
	assert.True(t, lex.Sets.Questions.Contains("how"))

	assert.Len(t, lex.Responses.Greeting, 4)
	assert.Len(t, lex.Responses.Farewell, 5)
	assert.NotEmpty(t, lex.Responses.Quote)
}

func TestSetExactMatch(t *testing.T) {
	s := NewSet("Hi", " hey ", "")

	assert.True(t, s.Contains("hi"))
	assert.True(t, s.Contains("HEY"))
	assert.False(t, s.Contains("hiya"))
	assert.False(t, s.Contains("h"))
	assert.False(t, s.Contains(""))
	assert.Len(t, s, 2)
}

func TestParseRejectsEmptyPools(t *testing.T) {
	data := []byte(`
sets:
  greetings: [hi]
responses:
  greeting: ["Hi!"]
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set farewells is empty")
	assert.Contains(t, err.Error(), "response pool song is empty")
}

func TestValidateErrorOrder(t *testing.T) {
	want := "set greetings is empty\n" +
		"set farewells is empty\n" +
		"set request_verbs is empty\n" +
		"set quote_nouns is empty\n" +
		"set song_verbs is empty\n" +
		"set self_targets is empty\n" +
		"set questions is empty\n" +
		"response pool greeting is empty\n" +
		"response pool welcome is empty\n" +
		"response pool self_state is empty\n" +
		"response pool quote is empty\n" +
		"response pool song is empty\n" +
		"response pool farewell is empty"

	for i := 0; i < 10; i++ {
		err := (&Lexicon{}).Validate()
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}

func TestDefaultPoolSizes(t *testing.T) {
	r := Default().Responses

	assert.Len(t, r.Greeting, 4)
	assert.Len(t, r.Welcome, 4)
	assert.Len(t, r.SelfState, 3)
	assert.Len(t, r.Quote, 6)
	assert.Len(t, r.Song, 5)
	assert.Len(t, r.Farewell, 5)
	assert.Contains(t, r.Welcome, "Hello! I'm a greeting bot")
	assert.Contains(t, r.SelfState, "Right now I'm feeling great! Just a little sleepy")
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		lex, err := Load("")
		require.NoError(t, err)
		assert.True(t, lex.Sets.Greetings.Contains("yo"))
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		override := `
sets:
  greetings: [hola]
  farewells: [adios]
  request_verbs: [dime]
  quote_nouns: [frase]
  song_verbs: [canta]
  self_targets: [tu]
  questions: [como]
responses:
  greeting: ["Hola!"]
  welcome: ["Bienvenido"]
  self_state: ["Bien"]
  quote: ["Una frase"]
  song: ["La la la"]
  farewell: ["Adios!"]
`
		require.NoError(t, os.WriteFile(path, []byte(override), 0600))

		lex, err := Load(path)
		require.NoError(t, err)
		assert.True(t, lex.Sets.Greetings.Contains("Hola"))
		assert.False(t, lex.Sets.Greetings.Contains("hi"))
		assert.Equal(t, []string{"Adios!"}, lex.Responses.Farewell)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
