package tscrunch

// emitTokens serializes tokens in order and appends the terminator byte.
func emitTokens(src []byte, tokens []Token) []byte {
	out := make([]byte, 0, len(tokens)*2+1)
	for _, t := range tokens {
		out = append(out, t.payload(src)...)
	}
	out = append(out, terminator)
	return out
}
