package voice

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("  Pay Rent "); got != "pay rent" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name     string
		stored   string
		spoken   string
		score    float64
		verified bool
	}{
		{"exact phrase", "pay rent", "pay rent", 1.0, true},
		{"case and whitespace insensitive", "pay rent", "  Pay RENT ", 1.0, true},
		{"half match", "pay rent", "rent", 0.5, false},
		{"no match", "pay rent", "hello world", 0, false},
		{"word order irrelevant", "pay rent", "rent pay", 1.0, true},
		// Repeated spoken words are not deduplicated against the
		// stored set, so the score can saturate past a fair match.
		{"repeated word saturates", "pay rent", "rent rent", 1.0, true},
		{"extra words not penalized", "pay rent", "please pay rent now", 1.0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.stored, tc.spoken)
			if got.Score != tc.score {
				t.Fatalf("Score = %v, want %v", got.Score, tc.score)
			}
			if got.Verified != tc.verified {
				t.Fatalf("Verified = %v, want %v", got.Verified, tc.verified)
			}
		})
	}
}

func TestMatchAfterEnrollNormalization(t *testing.T) {
	stored := Normalize("Pay Rent") // what enrollment persists
	got := Match(stored, "pay rent")
	if !got.Verified || got.Score != 1.0 {
		t.Fatalf("Match = %+v, want verified with score 1.0", got)
	}
}

func TestDegenerateEnrollment(t *testing.T) {
	// An empty stored phrase splits into a single empty word, so the
	// denominator is 1 and an empty spoken phrase scores 1.0. Callers
	// prevent this by rejecting empty passphrases at enrollment.
	got := Score("", "")
	if got != 1.0 {
		t.Fatalf("Score = %v, want 1.0", got)
	}
}
