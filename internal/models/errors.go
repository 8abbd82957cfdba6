package models

import "errors"

// State-machine violations surfaced by the model methods. The service layer
// translates these into the API error taxonomy.
var (
	ErrExtensionOutOfRange = errors.New("extension weeks out of range")
	ErrBorrowClosed        = errors.New("borrow already returned")
	ErrDemandProcessed     = errors.New("demand already processed")
	ErrMissingCredentials  = errors.New("approval requires sndl credentials")
	ErrDemandNotApproved   = errors.New("demand is not approved")
)
