package proposal

import "event-customize/internal/pkg/errs"

var (
	ErrEmptyDocumentRef    = errs.Mark(errs.New("document reference cannot be empty"), errs.ErrValidation)
	ErrDocumentRefTooLong  = errs.Mark(errs.New("document reference exceeds maximum length"), errs.ErrValidation)
	ErrMissingProvider     = errs.Mark(errs.New("provider id is required"), errs.ErrValidation)
	ErrProposalNotFound    = errs.Mark(errs.New("proposal not found for this request"), errs.ErrNotFound)
	ErrProposalNotPending  = errs.Mark(errs.New("proposal is no longer pending"), errs.ErrNotFound)
	ErrAlreadySettled      = errs.Mark(errs.New("a proposal has already been accepted for this request"), errs.ErrInvalidState)
	ErrDuplicateSubmission = errs.Mark(errs.New("provider already submitted a proposal for this request"), errs.ErrDuplicateSubmission)
)
