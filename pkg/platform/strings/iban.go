// Package strings normalises account identifiers entered by PSUs.
package strings

import (
	"strings"
	"unicode"
)

// CompactIBAN drops all whitespace and upper-cases the IBAN, so the paper
// format "DE89 3704 0044 0532 0130 00" matches the electronic one.
func CompactIBAN(iban string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, iban)
}

// DedupeIBANs compacts every IBAN and drops duplicates and blanks. Order is
// preserved and a nil or empty input is returned unchanged.
func DedupeIBANs(ibans []string) []string {
	if len(ibans) == 0 {
		return ibans
	}

	seen := make(map[string]struct{}, len(ibans))
	result := make([]string, 0, len(ibans))
	for _, v := range ibans {
		compact := CompactIBAN(v)
		if compact == "" {
			continue
		}
		if _, ok := seen[compact]; !ok {
			seen[compact] = struct{}{}
			result = append(result, compact)
		}
	}
	return result
}
