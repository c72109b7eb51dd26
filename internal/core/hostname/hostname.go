// Package hostname contains the pure hostname format rules.
// This is part of the Functional Core - no I/O, only pure functions.
package hostname

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix is the fixed leading segment of every issued hostname.
const Prefix = "CNL"

// Format builds a hostname from the concatenated category codes and the
// sequence number. The format is CNL-<codes>-NNN where NNN is zero-padded
// to at least three digits.
func Format(codes string, number int) string {
	return fmt.Sprintf("%s-%s-%03d", Prefix, codes, number)
}

// Parsed is a hostname split back into its parts.
type Parsed struct {
	Codes  string // supplier+type+sector+location codes
	Number int
}

// Parse splits a hostname produced by Format. Codes may themselves contain
// dashes, so the sequence is taken after the last one.
// Returns false if the string is not in the CNL-<codes>-<digits> shape.
func Parse(h string) (Parsed, bool) {
	rest, ok := strings.CutPrefix(h, Prefix+"-")
	if !ok {
		return Parsed{}, false
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 {
		return Parsed{}, false
	}
	digits := rest[i+1:]
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return Parsed{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Parsed{}, false
	}
	return Parsed{Codes: rest[:i], Number: n}, true
}

// CodePrefix returns the codes segment used to group machines in listings,
// or "" when h does not parse.
func CodePrefix(h string) string {
	p, ok := Parse(h)
	if !ok {
		return ""
	}
	return p.Codes
}
