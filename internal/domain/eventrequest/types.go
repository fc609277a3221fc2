package eventrequest

type Status string

const (
	StatusPending             Status = "pending"
	StatusUnderReview         Status = "under-review"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusShowPartnersMembers Status = "show-partners-members"
	StatusProposalAccepted    Status = "proposal-accepted"
)

var allStatuses = []Status{
	StatusPending,
	StatusUnderReview,
	StatusApproved,
	StatusRejected,
	StatusShowPartnersMembers,
	StatusProposalAccepted,
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected,
		StatusShowPartnersMembers, StatusProposalAccepted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusProposalAccepted
}

// AcceptsProposals reports whether providers may submit into a request in this status.
func (s Status) AcceptsProposals() bool {
	return s == StatusShowPartnersMembers
}

type PaymentStatus string

const PaymentStatusPaid PaymentStatus = "paid"

type Event string

const (
	EventAdminReview          Event = "AdminReview"
	EventAdminApprove         Event = "AdminApprove"
	EventAdminReject          Event = "AdminReject"
	EventAdminOpenToProviders Event = "AdminOpenToProviders"
	// EventAdminForceReject closes a request that is open to providers without an accepted proposal.
	EventAdminForceReject Event = "AdminForceReject"
	EventProposalAccepted Event = "ProposalAccepted"
)

func ParseEvent(s string) (Event, error) {
	ev := Event(s)
	switch ev {
	case EventAdminReview, EventAdminApprove, EventAdminReject, EventAdminOpenToProviders,
		EventAdminForceReject, EventProposalAccepted:
		return ev, nil
	default:
		return "", ErrUnknownEvent
	}
}

func (e Event) String() string {
	return string(e)
}

// IsAdmin reports whether the event belongs to the administrative actor.
// ProposalAccepted is reserved for the proposal coordinator.
func (e Event) IsAdmin() bool {
	switch e {
	case EventAdminReview, EventAdminApprove, EventAdminReject, EventAdminOpenToProviders, EventAdminForceReject:
		return true
	default:
		return false
	}
}

type edge struct {
	from  Status
	event Event
}

// transitions is the only authority on legal lifecycle moves.
var transitions = map[edge]Status{
	{StatusPending, EventAdminReview}:                  StatusUnderReview,
	{StatusUnderReview, EventAdminApprove}:             StatusApproved,
	{StatusUnderReview, EventAdminReject}:              StatusRejected,
	{StatusUnderReview, EventAdminOpenToProviders}:     StatusShowPartnersMembers,
	{StatusShowPartnersMembers, EventProposalAccepted}: StatusProposalAccepted,
	{StatusShowPartnersMembers, EventAdminForceReject}: StatusRejected,
}

// Next returns the status reached by applying ev in from, or ErrInvalidTransition.
func Next(from Status, ev Event) (Status, error) {
	to, ok := transitions[edge{from: from, event: ev}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return to, nil
}
