// Package codegen generates fallback company codes and PKS contract numbers
// when the backend cannot be asked for a suggestion.
package codegen

import (
	"fmt"
	"strings"
	"time"
)

// CompanyCode builds a code of the form PT-XXX-NNN from a company name.
func CompanyCode(name string) string {
	return CompanyCodeAt(name, time.Now())
}

// CompanyCodeAt is CompanyCode with an injectable clock.
//
// The letter part is the first three characters of the uppercased name with
// everything outside [A-Z0-9] stripped, padded with X when the name is too
// short. The sequence part is derived from the clock's millisecond value.
func CompanyCodeAt(name string, now time.Time) string {
	letters := sanitize(name)
	if len(letters) > 3 {
		letters = letters[:3]
	}
	for len(letters) < 3 {
		letters += "X"
	}

	seq := now.UnixMilli() % 1000
	return fmt.Sprintf("PT-%s-%03d", letters, seq)
}

// PKSNumber builds a contract number of the form PKS-YYYY-NNN.
func PKSNumber() string {
	return PKSNumberAt(time.Now())
}

// PKSNumberAt is PKSNumber with an injectable clock.
func PKSNumberAt(now time.Time) string {
	seq := now.UnixMilli() % 1000
	return fmt.Sprintf("PKS-%d-%03d", now.Year(), seq)
}

// sanitize uppercases a name and strips everything outside [A-Z0-9].
func sanitize(name string) string {
	upper := strings.ToUpper(name)
	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
