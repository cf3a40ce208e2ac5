package resource

import "strings"

// View is a borrowed slice of a source string; tokenizing never allocates,
// it only narrows the bounds of the original buffer.
type View = string

// Tokenize splits source on every occurrence of sep, writing up to
// len(out) views into out and returning the number written. Unlike
// strings.Split, the caller pre-allocates out and bounds the work: if source
// contains len(out) or more separators, the tokens past len(out) are dropped
// rather than growing the output, matching the reference tokenizer's
// caller-supplied-maximum contract.
func Tokenize(source, sep string, out []View) int {
	if sep == "" {
		if len(out) == 0 {
			return 0
		}
		out[0] = source
		return 1
	}

	n := 0
	rest := source
	for n < len(out) {
		idx := strings.Index(rest, sep)
		if idx < 0 {
			out[n] = rest
			n++
			return n
		}
		out[n] = rest[:idx]
		n++
		rest = rest[idx+len(sep):]
	}
	return n
}

// CountTokens reports how many tokens Tokenize would need to hold all of
// source, so callers can size their output slice.
func CountTokens(source, sep string) int {
	if sep == "" {
		return 1
	}
	return strings.Count(source, sep) + 1
}
