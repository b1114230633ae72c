package elevenlabs_test

import (
	"testing"

	// Packages
	"github.com/mutablelogic/go-elevenlabs/pkg/elevenlabs"
	"github.com/stretchr/testify/assert"
)

func Test_Language_001(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		in, language, code string
	}{
		{"en", "english", "en"},
		{"English", "english", "en"},
		{" DE ", "german", "de"},
		{"fil", "filipino", "fil"},
		{"chinese", "chinese", "zh"},
		{"klingon", "", ""},
		{"", "", ""},
	}
	for _, test := range tests {
		language, code := elevenlabs.LanguageCode(test.in)
		assert.Equal(test.language, language, test.in)
		assert.Equal(test.code, code, test.in)
	}
}
