package service

import "fmt"

// Provider call steps, used to tag a failed request with the point in the
// handoff it belonged to
const (
	CartStep = "cart"
	LeadStep = "lead"
)

// ProviderRequestError is returned for any failed provider call: transport
// errors, non-2xx statuses and responses missing a required field all
// surface as this one kind, carrying the step name so callers can present a
// step-specific message.
type ProviderRequestError struct {
	Step string
	Err  error
}

func (e *ProviderRequestError) Error() string {
	return fmt.Sprintf("provider %s request failed: [%v]", e.Step, e.Err)
}

func (e *ProviderRequestError) Unwrap() error {
	return e.Err
}

// UserMessage returns the shopper-facing notice for the failed step
func (e *ProviderRequestError) UserMessage() string {
	if e.Step == CartStep {
		return "There was an error transferring the cart. Please try again."
	}
	return "There was an error starting the application. Please try again."
}
