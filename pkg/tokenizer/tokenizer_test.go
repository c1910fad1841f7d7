package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		quotes []rune
		line   string
		want   []string
	}{
		{
			name:   "empty line",
			quotes: DefaultQuotes,
			line:   "",
			want:   nil,
		},
		{
			name:   "single token",
			quotes: DefaultQuotes,
			line:   "foo",
			want:   []string{"foo"},
		},
		{
			name:   "plain words",
			quotes: DefaultQuotes,
			line:   "foo hi there! btw hello",
			want:   []string{"foo", "hi", "there!", "btw", "hello"},
		},
		{
			name:   "multiple spaces collapse",
			quotes: DefaultQuotes,
			line:   "euler    is   cool",
			want:   []string{"euler", "is", "cool"},
		},
		{
			name:   "leading and trailing spaces dropped",
			quotes: DefaultQuotes,
			line:   "  foo bar  ",
			want:   []string{"foo", "bar"},
		},
		{
			name:   "newline is not a separator",
			quotes: DefaultQuotes,
			line:   "euler is\ncool",
			want:   []string{"euler", "is\ncool"},
		},
		{
			name:   "tab is not a separator",
			quotes: DefaultQuotes,
			line:   "euler is\tcool",
			want:   []string{"euler", "is\tcool"},
		},
		{
			name:   "basic single quotes",
			quotes: DefaultQuotes,
			line:   "foo 'hi there!' btw hello",
			want:   []string{"foo", "hi there!", "btw", "hello"},
		},
		{
			name:   "basic double quotes",
			quotes: DefaultQuotes,
			line:   `foo "hi there!" btw hello`,
			want:   []string{"foo", "hi there!", "btw", "hello"},
		},
		{
			name:   "quoted region at line start",
			quotes: DefaultQuotes,
			line:   "'foo hi' there! btw hello",
			want:   []string{"foo hi", "there!", "btw", "hello"},
		},
		{
			name:   "quoted region at line end",
			quotes: DefaultQuotes,
			line:   "there! btw hello 'foo hi'",
			want:   []string{"there!", "btw", "hello", "foo hi"},
		},
		{
			name:   "quoted region glued to normal text",
			quotes: DefaultQuotes,
			line:   "abc'defg'hijk",
			want:   []string{"abc", "defg", "hijk"},
		},
		{
			name:   "empty quoted token survives",
			quotes: DefaultQuotes,
			line:   "add '' done",
			want:   []string{"add", "", "done"},
		},
		{
			name:   "quoted token preserves inner spacing",
			quotes: DefaultQuotes,
			line:   "'hi   there!'",
			want:   []string{"hi   there!"},
		},
		{
			name:   "dangling quote is plain text",
			quotes: DefaultQuotes,
			line:   "there! btw hello 'foo hi",
			want:   []string{"there!", "btw", "hello", "'foo", "hi"},
		},
		{
			name:   "dangling quote at line end",
			quotes: DefaultQuotes,
			line:   "there! btw foo hi hello'",
			want:   []string{"there!", "btw", "foo", "hi", "hello'"},
		},
		{
			name:   "other-kind quote inside a matched pair is inert",
			quotes: DefaultQuotes,
			line:   `there! btw hello 'foo" hi'`,
			want:   []string{"there!", "btw", "hello", `foo" hi`},
		},
		{
			name:   "dangling quote after a matched pair",
			quotes: DefaultQuotes,
			line:   `there! btw 'foo hi' " hello`,
			want:   []string{"there!", "btw", "foo hi", `"`, "hello"},
		},
		{
			name:   "dangling quote before a matched pair",
			quotes: DefaultQuotes,
			line:   `there!" btw 'foo hi' hello`,
			want:   []string{`there!"`, "btw", "foo hi", "hello"},
		},
		{
			name:   "dangling quote at start does not block a later pair",
			quotes: []rune{'|', '\''},
			line:   "'there! btw |foo |hi hello",
			want:   []string{"'there!", "btw", "foo ", "hi", "hello"},
		},
		{
			name:   "multiple non-overlapping pairs",
			quotes: DefaultQuotes,
			line:   "abc'defg'hijk'lmno'pqr'stuvwx'yz",
			want:   []string{"abc", "defg", "hijk", "lmno", "pqr", "stuvwx", "yz"},
		},
		{
			name:   "mixed quote kinds",
			quotes: DefaultQuotes,
			line:   `abc'defg'hijklmnopqr"stuvwx"yz`,
			want:   []string{"abc", "defg", "hijklmnopqr", "stuvwx", "yz"},
		},
		{
			name:   "only configured quotes pair",
			quotes: []rune{'|'},
			line:   "abc'defg'hijk'lmno'pqr'stuvwx'yz|vvvv|v",
			want:   []string{"abc'defg'hijk'lmno'pqr'stuvwx'yz", "vvvv", "v"},
		},
		{
			name:   "run of empty pairs",
			quotes: DefaultQuotes,
			line:   "''''''''",
			want:   []string{"", "", "", ""},
		},
		{
			name:   "dense mixture of quote kinds",
			quotes: []rune{'|', '\''},
			line:   "''||'|''|'||''|'|",
			want:   []string{"", "", "|", "|", "", "", "'"},
		},
		{
			name:   "kitchen sink",
			quotes: []rune{'"', '\'', '|', '-'},
			line:   "bar 'foo is here' and quux is not\n necessarily 'here'\" b\"ut you co|uld say 'there'-",
			want: []string{
				"bar", "foo is here", "and", "quux", "is", "not\n",
				"necessarily", "here", " b", "ut", "you", "co|uld",
				"say", "there", "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line, tt.quotes)
			assert.Equal(t, tt.want, got.Tokens)
		})
	}
}

func TestTokenizeTrailingSpace(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "no trailing space", line: "foo bar", want: false},
		{name: "trailing space", line: "foo bar ", want: true},
		{name: "empty line", line: "", want: false},
		{name: "only spaces", line: "   ", want: true},
		{name: "space inside quotes at end", line: "foo 'bar '", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line, DefaultQuotes)
			assert.Equal(t, tt.want, got.TrailingSpace)
		})
	}
}
