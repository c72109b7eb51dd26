// Package sequence contains the pure number allocation rules for sector buckets.
// This is part of the Functional Core - no I/O, only pure functions.
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	hosterrors "github.com/example/hostgen/internal/errors"
)

// Used parses the keys of a sector bucket into the set of used numbers.
// Keys that are not integers are ignored.
func Used(bucket map[string]string) map[int]bool {
	used := make(map[int]bool, len(bucket))
	for key := range bucket {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		used[n] = true
	}
	return used
}

// NextFree returns the smallest positive integer absent from used.
func NextFree(used map[int]bool) int {
	n := 1
	for used[n] {
		n++
	}
	return n
}

// Allocate picks the sequence number for a new machine in sector.
// desired == 0 means "no preference": the smallest free number is returned.
// Any other value must be positive and unused.
func Allocate(sector string, bucket map[string]string, desired int) (int, error) {
	used := Used(bucket)
	if desired == 0 {
		return NextFree(used), nil
	}
	if desired < 0 || used[desired] {
		return 0, hosterrors.NewNumberInUseError(sector, desired)
	}
	return desired, nil
}

// Key returns the bucket key for a sequence number: zero-padded to three digits.
func Key(n int) string {
	return fmt.Sprintf("%03d", n)
}
