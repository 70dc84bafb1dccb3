// Package voice implements the textual passphrase match used as a
// coarse spoken-identity gate. It compares word tokens only; there is
// no audio analysis.
package voice

import "strings"

// Threshold is the minimum match score considered verified.
const Threshold = 0.85

// Result is the outcome of a verification attempt. A mismatch is a
// normal negative result, not an error.
type Result struct {
	Verified bool    `json:"verified"`
	Score    float64 `json:"score"`
}

// Normalize lowercases and trims a phrase. Enrollment stores the
// normalized form; verification normalizes both sides again.
func Normalize(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}

// Score computes the fraction of spoken words that appear anywhere in
// the stored passphrase. Both phrases are normalized and split on
// single spaces. The denominator is the stored passphrase's word
// count: repeated matching words in the spoken input can saturate the
// score, and extra unmatched spoken words are not penalized. That
// asymmetry is part of the observable contract and must not be
// "fixed" here.
func Score(stored, spoken string) float64 {
	storedWords := strings.Split(Normalize(stored), " ")
	spokenWords := strings.Split(Normalize(spoken), " ")

	matching := 0
	for _, w := range spokenWords {
		for _, s := range storedWords {
			if w == s {
				matching++
				break
			}
		}
	}
	return float64(matching) / float64(len(storedWords))
}

// Match scores the spoken text against the stored passphrase and
// applies the verification threshold.
func Match(stored, spoken string) Result {
	score := Score(stored, spoken)
	return Result{Verified: score >= Threshold, Score: score}
}
