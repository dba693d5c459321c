package i18n

import (
	"fmt"
	"sync"
)

// TranslatableError is an error whose message is looked up by key at the time it is rendered
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider renders a translation key with its format arguments
type MessageProvider interface {
	Sprintf(key string, args ...interface{}) string
}

// TrError is a translatable error with optional format arguments and a wrapped cause.
// Copies made by WithArgs and Wrap keep the sentinel of the error they were derived
// from, so errors.Is matches them against the package-level value.
//
//	err := NewError("comandante.error.not_found").WithArgs("app", 1)
//	errors.Is(err, ErrNotFound) // true
type TrError struct {
	sentinel *TrError
	key      string
	args     []interface{}
	wrapped  error
}

type bundleProvider struct{}

func (bundleProvider) Sprintf(key string, args ...interface{}) string {
	return Default().T(key, args...)
}

var (
	provider    MessageProvider = bundleProvider{}
	providerMux sync.RWMutex
)

// SetMessageProvider replaces the provider used to render every TrError
func SetMessageProvider(p MessageProvider) {
	providerMux.Lock()
	defer providerMux.Unlock()
	if p == nil {
		p = bundleProvider{}
	}
	provider = p
}

func currentProvider() MessageProvider {
	providerMux.RLock()
	defer providerMux.RUnlock()

	return provider
}

// NewError creates a new sentinel error for key
func NewError(key string) *TrError {
	e := &TrError{key: key}
	e.sentinel = e

	return e
}

// Error renders the message in the bundle's current default language
func (e *TrError) Error() string {
	msg := currentProvider().Sprintf(e.key, e.args...)
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is reports whether target is the sentinel this error derives from
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return false
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.wrapped
}
