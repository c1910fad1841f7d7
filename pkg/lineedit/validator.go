package lineedit

// Validity is a validator's verdict on a pending input line. There is no
// invalid verdict: an unclosed construct means "keep typing", never an
// error.
type Validity int

const (
	// Valid means the line can be submitted as-is.
	Valid Validity = iota

	// Incomplete means the line has an unclosed construct and input
	// should continue on the next line.
	Incomplete
)

// Validate decides whether input is ready to submit. A line is Incomplete
// when it has an unclosed quote, an unclosed bracket outside quotes, or a
// trailing unescaped backslash. Each check must pass independently.
func Validate(input string, quoteChars []rune) Validity {
	if hasOpenQuote(input, quoteChars) {
		return Incomplete
	}
	if hasOpenBracket(input, quoteChars) {
		return Incomplete
	}
	if hasDanglingEscape(input) {
		return Incomplete
	}
	return Valid
}

// hasOpenQuote walks the input tracking one open-quote slot. An unescaped
// quote character opens the slot when it is free, closes it when the same
// kind is already open, and is inert content when a different kind is open —
// so an apostrophe inside double quotes does not count.
//
// Each backslash toggles an escape flag, so "\\'" is an escaped quote and
// "\\\\'" is a real one.
func hasOpenQuote(input string, quoteChars []rune) bool {
	escaped := false
	inQuote := false
	var current rune

	for _, ch := range input {
		if ch == '\\' {
			escaped = !escaped
			continue
		}

		if !escaped && isQuoteChar(ch, quoteChars) {
			switch {
			case inQuote && ch == current:
				inQuote = false
				current = 0
			case inQuote:
				// Other-kind quote inside an open block: content.
			default:
				inQuote = true
				current = ch
			}
		}

		escaped = false
	}

	return inQuote
}

var closerToOpener = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// hasOpenBracket reports whether a round, square or curly bracket opened
// outside quotes is still unclosed. Brackets inside quoted or escaped text
// do not count, and a stray closer is treated as plain content rather than
// an error.
func hasOpenBracket(input string, quoteChars []rune) bool {
	var stack []rune
	escaped := false
	inQuote := false
	var current rune

	for _, ch := range input {
		if ch == '\\' {
			escaped = !escaped
			continue
		}

		switch {
		case escaped:
			// Escaped characters are plain content.
		case isQuoteChar(ch, quoteChars):
			switch {
			case inQuote && ch == current:
				inQuote = false
				current = 0
			case inQuote:
			default:
				inQuote = true
				current = ch
			}
		case inQuote:
			// Quoted content never affects bracket balance.
		case ch == '(' || ch == '[' || ch == '{':
			stack = append(stack, ch)
		case ch == ')' || ch == ']' || ch == '}':
			if len(stack) > 0 && stack[len(stack)-1] == closerToOpener[ch] {
				stack = stack[:len(stack)-1]
			}
		}

		escaped = false
	}

	return len(stack) > 0
}

// hasDanglingEscape reports whether the input ends in an odd run of
// backslashes, which escapes the newline and asks for more input.
func hasDanglingEscape(input string) bool {
	n := 0
	for i := len(input) - 1; i >= 0 && input[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func isQuoteChar(ch rune, quoteChars []rune) bool {
	for _, q := range quoteChars {
		if ch == q {
			return true
		}
	}
	return false
}
