package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name", input: "Royal Caterers", want: "royal-caterers"},
		{name: "punctuation collapses", input: "Joe's  Grill & Bar", want: "joe-s-grill-bar"},
		{name: "leading and trailing junk", input: "  --Hello World!  ", want: "hello-world"},
		{name: "digits kept", input: "Studio 54", want: "studio-54"},
		{name: "non-ascii dropped", input: "Café München", want: "caf-m-nchen"},
		{name: "empty input", input: "", want: ""},
		{name: "only junk", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
