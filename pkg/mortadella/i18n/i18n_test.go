package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizeWithoutInitFallsBack(t *testing.T) {
	active = nil

	assert.Equal(t, "space", Localize(&Message{ID: "key_space", Other: "space"}, nil))
	assert.Equal(t, "", Localize(nil, nil))
}

func TestLocalizeUsesLoadedCatalog(t *testing.T) {
	err := InitFromBytes([]MessageFile{
		{Name: "es.toml", Content: []byte("key_space = \"espacio\"\nkey_return = \"intro\"\n")},
	})
	require.NoError(t, err)

	SetLanguage(language.Spanish)
	assert.Equal(t, "espacio", Localize(&Message{ID: "key_space", Other: "space"}, nil))
	assert.Equal(t, "intro", Localize(&Message{ID: "key_return", Other: "return"}, nil))

	// Unknown IDs keep their default text.
	assert.Equal(t, "shift", Localize(&Message{ID: "key_shift", Other: "shift"}, nil))

	SetLanguage(language.English)
	assert.Equal(t, "space", Localize(&Message{ID: "key_space", Other: "space"}, nil))
}

func TestSetWithCode(t *testing.T) {
	require.NoError(t, InitFromBytes(nil))
	assert.NoError(t, SetWithCode("fr"))
	assert.Error(t, SetWithCode("not a code!"))
}

func TestInitRejectsMalformedCatalog(t *testing.T) {
	err := InitFromBytes([]MessageFile{
		{Name: "bad.toml", Content: []byte("key = [unclosed")},
	})
	assert.Error(t, err)
}
