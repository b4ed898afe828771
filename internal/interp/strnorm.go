package interp

import "golang.org/x/text/unicode/norm"

// normalizeString puts a string into NFC (canonical composed form) before
// it is stored in a StringValue or used as a hash key. Two source literals
// that are visually and semantically identical but differ in composed vs.
// decomposed Unicode form (e.g. "café" typed with a precomposed é vs. e +
// combining acute) would otherwise compare unequal and fail to match each
// other when used as Hash keys.
func normalizeString(s string) string {
	return norm.NFC.String(s)
}
