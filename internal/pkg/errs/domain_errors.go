package errs

// Workflow error taxonomy. Every failure surfaced by the workflow is marked
// with exactly one of these so callers can switch on a stable code.
var (
	ErrValidation          = New("validation error")
	ErrInsufficientBalance = New("insufficient balance")
	ErrNotFound            = New("not found")
	ErrForbidden           = New("forbidden")
	ErrInvalidState        = New("invalid state")
	ErrDuplicateSubmission = New("duplicate submission")

	// Idempotency errors
	ErrIdempotencyInProgress = New("request with this idempotency key is in progress")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

type Code string

const (
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeNotFound            Code = "NOT_FOUND"
	CodeForbidden           Code = "FORBIDDEN"
	CodeInvalidState        Code = "INVALID_STATE"
	CodeDuplicateSubmission Code = "DUPLICATE_SUBMISSION"
	CodeRequestInProgress   Code = "REQUEST_IN_PROGRESS"
	CodeInternal            Code = "INTERNAL"

	// CodeUnauthenticated is produced by the HTTP layer only; no workflow error carries it.
	CodeUnauthenticated Code = "UNAUTHENTICATED"
)

var codeTable = []struct {
	err  error
	code Code
}{
	{ErrValidation, CodeValidation},
	{ErrInsufficientBalance, CodeInsufficientBalance},
	{ErrNotFound, CodeNotFound},
	{ErrForbidden, CodeForbidden},
	{ErrInvalidState, CodeInvalidState},
	{ErrDuplicateSubmission, CodeDuplicateSubmission},
	{ErrIdempotencyInProgress, CodeRequestInProgress},
}

// CodeOf returns the stable code for err, or CodeInternal when err carries no taxonomy mark.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	for _, entry := range codeTable {
		if Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeInternal
}
