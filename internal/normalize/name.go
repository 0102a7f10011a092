package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultMinNameAlpha is the minimum count of alphabetic characters an
// extracted span needs before it is believed to be a human name.
const DefaultMinNameAlpha = 3

var (
	reHonorificPrefix = regexp.MustCompile(`(?i)^(mr|mrs|ms|dr|prof)\.?\s+`)
	reSuffix          = regexp.MustCompile(`(?i)\s+(jr|sr|iii|iv)\.?$`)
	reDateShaped      = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}([/-]\d{2,4})?$`)
	reCodeShaped      = regexp.MustCompile(`^[A-Z]+\d+$`)
)

// stopwords are column labels and report vocabulary that leak into name
// spans when column widths drift.
var stopwords = map[string]struct{}{
	"date": {}, "amount": {}, "due": {}, "premium": {}, "policy": {},
	"number": {}, "code": {}, "branch": {}, "commission": {}, "summary": {},
	"total": {}, "grand": {}, "claim": {}, "claims": {}, "assured": {},
	"holder": {}, "name": {}, "neft": {}, "gross": {}, "risk": {},
}

// CleanName validates and canonicalizes a raw extracted name span.
// It rejects spans that are purely numeric, date-shaped, code-shaped, digit
// heavy, or carry fewer than minAlpha alphabetic characters - the guard
// against a policy number or amount misread as a name. Accepted names come
// back whitespace-collapsed and title-cased.
func CleanName(raw string, minAlpha int) (string, bool) {
	if minAlpha <= 0 {
		minAlpha = DefaultMinNameAlpha
	}
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", false
	}
	name = reHonorificPrefix.ReplaceAllString(name, "")
	name = reSuffix.ReplaceAllString(name, "")

	compact := strings.ReplaceAll(name, " ", "")
	if compact == "" || isAllDigits(compact) || reDateShaped.MatchString(compact) {
		return "", false
	}

	var digits, alphas int
	for _, r := range name {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			alphas++
		}
	}
	if alphas < minAlpha || digits > alphas {
		return "", false
	}

	words := strings.Fields(name)
	kept := words[:0]
	for _, w := range words {
		if _, drop := stopwords[strings.ToLower(w)]; drop {
			continue
		}
		if isAllDigits(w) || reDateShaped.MatchString(w) || reCodeShaped.MatchString(w) {
			continue
		}
		kept = append(kept, titleWord(w))
	}
	if len(kept) == 0 || len(kept) > 5 {
		return "", false
	}
	out := strings.Join(kept, " ")
	if len(out) < 3 || len(out) > 60 {
		return "", false
	}
	return out, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// titleWord uppercases the first letter and every letter following a
// non-letter, so "s.b." becomes "S.B." and "LAKSHMANA" becomes "Lakshmana".
func titleWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	prevLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
