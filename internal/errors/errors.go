// Package errors provides the error kinds reported by hostgen.
// Each kind is a struct carrying the details a user-facing message needs and
// matches a sentinel through errors.Is, so callers can branch on the kind
// without caring how deeply it was wrapped.
package errors

import (
	"errors"
	"fmt"
)

// New is an alias for the standard library errors.New.
var New = errors.New

// Sentinels matched by the typed errors below.
var (
	// ErrStorage indicates the persisted catalog could not be read or written.
	ErrStorage = errors.New("storage failure")

	// ErrDuplicateCode indicates a code is already registered in a category.
	ErrDuplicateCode = errors.New("duplicate code")

	// ErrNumberInUse indicates a requested sequence number cannot be used.
	ErrNumberInUse = errors.New("number in use")

	// ErrNotFound indicates a category name or hostname is unknown.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed user input.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError reports a failure reading, decoding or writing the store.
type StorageError struct {
	Operation string // load, save, decode, encode, open
	Path      string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s failed for %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError creates a new StorageError
func NewStorageError(operation, path string, err error) *StorageError {
	return &StorageError{Operation: operation, Path: path, Err: err}
}

// DuplicateCodeError reports an attempt to register a code twice in one category.
type DuplicateCodeError struct {
	Category string
	Code     string
	Owner    string // name already holding the code
}

// Error implements the error interface
func (e *DuplicateCodeError) Error() string {
	if e.Owner != "" {
		return fmt.Sprintf("%s code %q is already used by %q", e.Category, e.Code, e.Owner)
	}
	return fmt.Sprintf("%s code %q is already used", e.Category, e.Code)
}

// Is implements errors.Is support
func (e *DuplicateCodeError) Is(target error) bool {
	return target == ErrDuplicateCode
}

// NewDuplicateCodeError creates a new DuplicateCodeError
func NewDuplicateCodeError(category, code, owner string) *DuplicateCodeError {
	return &DuplicateCodeError{Category: category, Code: code, Owner: owner}
}

// NumberInUseError reports an explicit sequence number that is taken or not positive.
type NumberInUseError struct {
	Sector string
	Number int
}

// Error implements the error interface
func (e *NumberInUseError) Error() string {
	if e.Number <= 0 {
		return fmt.Sprintf("sequence number %d is not valid: numbers start at 1", e.Number)
	}
	return fmt.Sprintf("sequence number %03d is already used in sector %s", e.Number, e.Sector)
}

// Is implements errors.Is support
func (e *NumberInUseError) Is(target error) bool {
	return target == ErrNumberInUse
}

// NewNumberInUseError creates a new NumberInUseError
func NewNumberInUseError(sector string, number int) *NumberInUseError {
	return &NumberInUseError{Sector: sector, Number: number}
}

// NotFoundError reports an unknown category name, sector or hostname.
type NotFoundError struct {
	Resource string // supplier, type, sector, location, hostname
	Name     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// InvalidInputError reports malformed input such as a blank name or a non-numeric choice.
type InvalidInputError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Value, e.Message)
}

// Is implements errors.Is support
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(field, value, message string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Message: message}
}

// IsStorage checks if an error is a storage failure
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsDuplicateCode checks if an error is a duplicate code rejection
func IsDuplicateCode(err error) bool {
	return errors.Is(err, ErrDuplicateCode)
}

// IsNumberInUse checks if an error is a sequence number rejection
func IsNumberInUse(err error) bool {
	return errors.Is(err, ErrNumberInUse)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// WrapStorage wraps err as a StorageError, returning nil for a nil err.
func WrapStorage(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewStorageError(operation, path, err)
}
