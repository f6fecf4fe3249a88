package storefront

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrStatus is returned when the API answers with a non-2xx status
	ErrStatus = errors.New("unexpected storefront status")
	// ErrUserErrors is returned when a cart mutation reports user errors
	ErrUserErrors = errors.New("storefront rejected the input")
	// ErrMissingCart is returned when a cart mutation returns no cart
	ErrMissingCart = errors.New("storefront returned no cart")
	// ErrUnknownOperation is returned for operations without a document
	ErrUnknownOperation = errors.New("unknown storefront operation")
)

// GraphQLError is one entry of a GraphQL "errors" array
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// GraphQLErrors is returned when a response carries top-level errors
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// userErrorsError wraps cart mutation userErrors so callers can match
// ErrUserErrors with errors.Is
type userErrorsError struct {
	errs []userError
}

func (e *userErrorsError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, ue := range e.errs {
		if len(ue.Field) > 0 {
			msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(ue.Field, "."), ue.Message))
		} else {
			msgs = append(msgs, ue.Message)
		}
	}
	return fmt.Sprintf("%s: %s", ErrUserErrors, strings.Join(msgs, "; "))
}

func (e *userErrorsError) Is(target error) bool {
	return target == ErrUserErrors
}

// Messages returns the user error messages in order
func (e *userErrorsError) Messages() []string {
	out := make([]string, 0, len(e.errs))
	for _, ue := range e.errs {
		out = append(out, ue.Message)
	}
	return out
}
