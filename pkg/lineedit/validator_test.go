package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelf-sh/shelf/pkg/tokenizer"
)

func TestValidateQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Validity
	}{
		{name: "empty input", input: "", want: Valid},
		{name: "plain text", input: "add title Dune", want: Valid},
		{name: "one single quote", input: "'", want: Incomplete},
		{name: "one double quote", input: `"`, want: Incomplete},
		{name: "balanced single quotes", input: "''", want: Valid},
		{name: "balanced double quotes", input: `""`, want: Valid},
		{name: "escaped quote does not open", input: `\'`, want: Valid},
		{name: "mismatched quote kinds stay open", input: `'"`, want: Incomplete},
		{name: "alternating quotes leave one open", input: `'"'"'`, want: Incomplete},
		{name: "overlapping kinds leave one open", input: `' " ' "`, want: Incomplete},
		{name: "escaped backslash then escaped quote", input: `\\\'`, want: Valid},
		{name: "escaped backslashes then real quote", input: `\\\\'`, want: Incomplete},
		{name: "other-kind quote inside a closed block", input: `"'"`, want: Valid},
		{
			name:  "several closed blocks",
			input: `'hey how are you?' "im doing ok" 'please thank me for asking'`,
			want:  Valid,
		},
		{
			name:  "closed blocks with escaped backslashes between",
			input: `'hey how are you?' "im doing ok" \\'please thank me for asking'`,
			want:  Valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input, tokenizer.DefaultQuotes))
		})
	}
}

func TestValidateBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Validity
	}{
		{name: "balanced round", input: "add (first edition)", want: Valid},
		{name: "open round", input: "add (first edition", want: Incomplete},
		{name: "nested balanced", input: "tag {fiction [classic (old)]}", want: Valid},
		{name: "nested open", input: "tag {fiction [classic", want: Incomplete},
		{name: "stray closer is content", input: "add weird)name", want: Valid},
		{name: "bracket inside quotes is content", input: "add '(unclosed'", want: Valid},
		{name: "escaped bracket is content", input: `add \(`, want: Valid},
		{name: "quote reopens after bracket closes", input: "(note 'still open", want: Incomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input, tokenizer.DefaultQuotes))
		})
	}
}

func TestValidateTrailingEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Validity
	}{
		{name: "trailing backslash continues", input: `add title \`, want: Incomplete},
		{name: "trailing escaped backslash submits", input: `add title \\`, want: Valid},
		{name: "three trailing backslashes continue", input: `add title \\\`, want: Incomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input, tokenizer.DefaultQuotes))
		})
	}
}
