package command

// CompletionKind discriminates what a Completion's candidates mean to the
// line editor.
type CompletionKind int

const (
	// CompleteNone offers no candidates.
	CompleteNone CompletionKind = iota

	// CompleteSuffixes offers suffixes meant to be appended directly at
	// the cursor, finishing the word being typed.
	CompleteSuffixes

	// CompleteValues offers whole values for the next argument. The line
	// editor inserts a space separator first if one is missing.
	CompleteValues
)

// Completion is a leaf command's answer to a tab-completion request over its
// arguments.
type Completion struct {
	Kind       CompletionKind
	Candidates []string
}

// NoCompletion reports that the command offers nothing to complete.
func NoCompletion() Completion {
	return Completion{Kind: CompleteNone}
}

// CompleteWithSuffixes offers suffixes to append at the cursor.
func CompleteWithSuffixes(suffixes ...string) Completion {
	return Completion{Kind: CompleteSuffixes, Candidates: suffixes}
}

// CompleteWithValues offers whole candidate values for the next argument.
func CompleteWithValues(values ...string) Completion {
	return Completion{Kind: CompleteValues, Candidates: values}
}
