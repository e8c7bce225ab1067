package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesScriptBlocks(t *testing.T) {
	got, err := Clean("hola <script>alert(1)</script> mundo")
	require.NoError(t, err)
	assert.Equal(t, "hola  mundo", got)
}

func TestCleanScriptOnlyInputIsInvalid(t *testing.T) {
	_, err := Clean("<script>alert(1)</script>")
	assert.ErrorIs(t, err, ErrNoValidChars)
}

func TestCleanStripsRemainingTags(t *testing.T) {
	got, err := Clean("<b>hola</b> <img src=x> mundo")
	require.NoError(t, err)
	assert.Equal(t, "hola  mundo", got)
}

func TestCleanEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t "} {
		_, err := Clean(raw)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", raw)
	}
}

func TestCleanKeepsAccentsAndPunctuation(t *testing.T) {
	in := "¿Qué actividades hay en Puerto López? ¡Dímelo, por favor! (días 1-3) info@pldescubierto.com +593"
	got, err := Clean(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCleanRemovesDisallowedCharacters(t *testing.T) {
	got, err := Clean("hola $%&*# mundo")
	require.NoError(t, err)
	assert.NotContains(t, got, "$")
	assert.NotContains(t, got, "&")
	assert.Contains(t, got, "hola")
	assert.Contains(t, got, "mundo")
}

func TestCleanTruncatesAtMaxLength(t *testing.T) {
	got, err := Clean(strings.Repeat("a", 1500))
	require.NoError(t, err)
	assert.Len(t, got, MaxLength)
}

func TestCleanNeverExceedsMaxLength(t *testing.T) {
	inputs := []string{
		strings.Repeat("¿qué? ", 400),
		strings.Repeat("a", 999) + "  " + strings.Repeat("b", 500),
	}
	for _, in := range inputs {
		got, err := Clean(in)
		require.NoError(t, err)
		assert.LessOrEqual(t, len([]rune(got)), MaxLength)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"hola mundo",
		"  con espacios  ",
		"<b>negrita</b> y <script>x</script> texto",
		"¿Cuándo es la temporada de ballenas?",
		strings.Repeat("palabra ", 300),
		"símbolos $%& mezclados @ok",
	}
	for _, in := range inputs {
		once, err := Clean(in)
		require.NoError(t, err, "input %q", in)
		twice, err := Clean(once)
		require.NoError(t, err, "re-clean of %q", once)
		assert.Equal(t, once, twice, "Clean is not idempotent for %q", in)
	}
}
