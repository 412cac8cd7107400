package dedupe

// Containment returns the fraction of a's tokens that also appear in b,
// in [0, 1]. It is directional: Containment(a, b) measures how much of the
// earlier page survives in the later one, not symmetric similarity.
// An empty a scores 0, so a blank page is never treated as redundant.
func Containment(a, b NormalizedPage) float64 {
	if len(a.Tokens) == 0 {
		return 0
	}
	shared := 0
	for tok := range a.Tokens {
		if _, ok := b.Tokens[tok]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(a.Tokens))
}
