package cart

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	"shopgrip/internal/domain"
)

const (
	// PanelCart is the side panel opened after a successful add to cart
	PanelCart = "cart"

	// ActionLinesAdd is the cart form action that adds lines
	ActionLinesAdd = "LinesAdd"

	// FormField is the form field carrying the serialized cart input
	FormField = "cartFormInput"

	// Route is the target of cart form submissions
	Route = "/cart"
)

var (
	// ErrNoVariant is reported when a product has nothing to add
	ErrNoVariant = errors.New("product has no variant to add")
	// ErrNoCart is reported when a submission settles without a cart
	ErrNoCart = errors.New("cart submission returned no cart")
)

// Line is one merchandise line of an add-to-cart gesture
type Line struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// LineFor builds the line for a product's first available variant
func LineFor(p domain.Product) (Line, bool) {
	v, ok := p.FirstAvailableVariant()
	if !ok || v.ID == "" {
		return Line{}, false
	}
	return Line{MerchandiseID: v.ID, Quantity: 1}, true
}

// FormInput is the serialized body of a cart form
type FormInput struct {
	Action string     `json:"action"`
	Inputs FormInputs `json:"inputs"`
}

// FormInputs holds the action's arguments
type FormInputs struct {
	Lines []Line `json:"lines"`
}

// FormSubmission is a generic form post: method, target and body
type FormSubmission struct {
	Method string
	Action string
	Form   url.Values
}

// NewLinesAddSubmission serializes lines into a LinesAdd form submission
func NewLinesAddSubmission(lines []Line) (FormSubmission, error) {
	body, err := json.Marshal(FormInput{
		Action: ActionLinesAdd,
		Inputs: FormInputs{Lines: lines},
	})
	if err != nil {
		return FormSubmission{}, errors.Wrap(err, "failed to encode cart form input")
	}
	return FormSubmission{
		Method: "POST",
		Action: Route,
		Form:   url.Values{FormField: []string{string(body)}},
	}, nil
}

// DecodeFormInput reads the cart input back out of a submission
func DecodeFormInput(sub FormSubmission) (FormInput, error) {
	raw := sub.Form.Get(FormField)
	if raw == "" {
		return FormInput{}, errors.Errorf("submission has no %s field", FormField)
	}
	var in FormInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return FormInput{}, errors.Wrap(err, "failed to decode cart form input")
	}
	return in, nil
}

// Submitter performs cart form submissions
type Submitter interface {
	Submit(ctx context.Context, sub FormSubmission) (*domain.Cart, error)
}

// PanelOpener opens a named side panel
type PanelOpener interface {
	Open(panel string)
}

// FailureFunc is told about submissions that did not yield a cart
type FailureFunc func(submissionID uint64, err error)

// Payload is the data a settled submission left on the fetcher
type Payload struct {
	Cart *domain.Cart
	Err  error
}

// SettledMsg carries the outcome of a submission back into Update
type SettledMsg struct {
	SubmissionID uint64
	Cart         *domain.Cart
	Err          error
}
