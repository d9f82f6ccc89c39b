package content

import "strings"

// AddToken appends a trimmed token unless the set already contains it
// under case-insensitive comparison. Empty input is a no-op. The submitted
// casing is kept.
func AddToken(tokens []string, raw string) []string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return tokens
	}
	for _, existing := range tokens {
		if strings.EqualFold(existing, token) {
			return tokens
		}
	}
	return append(tokens, token)
}

// RemoveTokenAt removes the token at index i, preserving the order of the
// rest. Out-of-range indexes leave the set unchanged.
func RemoveTokenAt(tokens []string, i int) []string {
	if i < 0 || i >= len(tokens) {
		return tokens
	}
	return append(tokens[:i:i], tokens[i+1:]...)
}

// NormalizeTokens trims every token and drops case-insensitive duplicates,
// keeping the first occurrence and the original order.
func NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, raw := range tokens {
		out = AddToken(out, raw)
	}
	return out
}

func containsTokenFold(tokens []string, token string) bool {
	for _, existing := range tokens {
		if strings.EqualFold(existing, token) {
			return true
		}
	}
	return false
}
