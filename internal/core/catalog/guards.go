// Package catalog contains the pure business logic for category maps.
// Guards are pure functions that evaluate preconditions without side effects.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Err     error // typed rejection, when the caller needs to branch on the kind
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}
	return fmt.Errorf("%s", r.Reason)
}

// AddEntryContext provides context for category entry guards.
// Name and Code are expected to be normalized already.
type AddEntryContext struct {
	Category models.Category
	Name     string
	Code     string
	Existing map[string]string // current name->code map of the category
}

// CanAddEntry evaluates whether name->code can be registered in a category.
// Rules:
// - Name must not be blank
// - Code must not be blank
// - Code must not already be a value of the category (exact match)
//
// An existing name is not a rejection; its code is replaced.
func CanAddEntry(ctx AddEntryContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s name cannot be empty", ctx.Category),
			Err:     hosterrors.NewInvalidInputError(string(ctx.Category)+" name", ctx.Name, "cannot be empty"),
		}
	}

	if strings.TrimSpace(ctx.Code) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s code cannot be empty", ctx.Category),
			Err:     hosterrors.NewInvalidInputError(string(ctx.Category)+" code", ctx.Code, "cannot be empty"),
		}
	}

	if owner, taken := CodeOwner(ctx.Existing, ctx.Code); taken {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s code %q is already used by %q", ctx.Category, ctx.Code, owner),
			Err:     hosterrors.NewDuplicateCodeError(string(ctx.Category), ctx.Code, owner),
		}
	}

	return GuardResult{Allowed: true}
}

// CodeOwner returns the name holding code in entries. When several names
// share a code (hand-edited stores) the alphabetically first one is reported.
func CodeOwner(entries map[string]string, code string) (string, bool) {
	var owners []string
	for name, c := range entries {
		if c == code {
			owners = append(owners, name)
		}
	}
	if len(owners) == 0 {
		return "", false
	}
	sort.Strings(owners)
	return owners[0], true
}
