package eventrequest

import "event-customize/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.Mark(errs.New("invalid event request status"), errs.ErrValidation)
	ErrUnknownEvent      = errs.Mark(errs.New("unknown lifecycle event"), errs.ErrValidation)
	ErrInvalidTransition = errs.Mark(errs.New("transition not allowed from current status"), errs.ErrInvalidState)

	ErrInvalidEventType       = errs.Mark(errs.New("invalid event type"), errs.ErrValidation)
	ErrOtherLabelRequired     = errs.Mark(errs.New("event type other requires a label"), errs.ErrValidation)
	ErrInvalidGuestCount      = errs.Mark(errs.New("guest count must be at least 1"), errs.ErrValidation)
	ErrEmptyBudget            = errs.Mark(errs.New("budget cannot be empty"), errs.ErrValidation)
	ErrNoActivities           = errs.Mark(errs.New("at least one activity is required"), errs.ErrValidation)
	ErrSpecialRequestsTooLong = errs.Mark(errs.New("special requests exceed maximum length"), errs.ErrValidation)
	ErrInvalidCharge          = errs.Mark(errs.New("charge must be positive"), errs.ErrValidation)
	ErrMissingOwner           = errs.Mark(errs.New("requester id is required"), errs.ErrValidation)

	ErrRequestNotFound = errs.Mark(errs.New("event request not found"), errs.ErrNotFound)
)
