package eventrequest

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxSpecialRequestsLength = 2000
	MaxActivityTagLength     = 64
)

type EventType string

const (
	EventTypeWedding     EventType = "wedding"
	EventTypeBirthday    EventType = "birthday"
	EventTypeCorporate   EventType = "corporate"
	EventTypeConference  EventType = "conference"
	EventTypeGraduation  EventType = "graduation"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeOther       EventType = "other"
)

func NewEventType(s string) (EventType, error) {
	et := EventType(strings.ToLower(strings.TrimSpace(s)))
	switch et {
	case EventTypeWedding, EventTypeBirthday, EventTypeCorporate, EventTypeConference,
		EventTypeGraduation, EventTypeAnniversary, EventTypeOther:
		return et, nil
	default:
		return "", ErrInvalidEventType
	}
}

func (t EventType) String() string {
	return string(t)
}

type GuestCount int

func NewGuestCount(n int) (GuestCount, error) {
	if n < 1 {
		return 0, ErrInvalidGuestCount
	}
	return GuestCount(n), nil
}

func (g GuestCount) Int() int {
	return int(g)
}

// Budget is free text as entered by the requester ("5000", "3k-5k", "flexible").
type Budget string

func NewBudget(s string) (Budget, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyBudget
	}
	return Budget(s), nil
}

func (b Budget) String() string {
	return string(b)
}

// ActivityTags is an ordered set; duplicates (case-insensitive) are dropped.
type ActivityTags []string

func NewActivityTags(tags []string) (ActivityTags, error) {
	seen := make(map[string]struct{}, len(tags))
	out := make(ActivityTags, 0, len(tags))
	for _, raw := range tags {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if utf8.RuneCountInString(tag) > MaxActivityTagLength {
			tag = string([]rune(tag)[:MaxActivityTagLength])
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil, ErrNoActivities
	}
	return out, nil
}

func (a ActivityTags) Strings() []string {
	out := make([]string, len(a))
	copy(out, a)
	return out
}

type Details struct {
	eventType       EventType
	otherLabel      string
	guestCount      GuestCount
	budget          Budget
	activities      ActivityTags
	specialRequests string
}

type DetailsInput struct {
	EventType       string
	OtherLabel      string
	GuestCount      int
	Budget          string
	Activities      []string
	SpecialRequests string
}

func NewDetails(in DetailsInput) (Details, error) {
	et, err := NewEventType(in.EventType)
	if err != nil {
		return Details{}, err
	}

	label := strings.TrimSpace(in.OtherLabel)
	if et == EventTypeOther && label == "" {
		return Details{}, ErrOtherLabelRequired
	}
	if et != EventTypeOther {
		label = ""
	}

	guests, err := NewGuestCount(in.GuestCount)
	if err != nil {
		return Details{}, err
	}

	budget, err := NewBudget(in.Budget)
	if err != nil {
		return Details{}, err
	}

	activities, err := NewActivityTags(in.Activities)
	if err != nil {
		return Details{}, err
	}

	special := strings.TrimSpace(in.SpecialRequests)
	if utf8.RuneCountInString(special) > MaxSpecialRequestsLength {
		return Details{}, ErrSpecialRequestsTooLong
	}

	return Details{
		eventType:       et,
		otherLabel:      label,
		guestCount:      guests,
		budget:          budget,
		activities:      activities,
		specialRequests: special,
	}, nil
}

func (d Details) EventType() EventType     { return d.eventType }
func (d Details) OtherLabel() string       { return d.otherLabel }
func (d Details) GuestCount() GuestCount   { return d.guestCount }
func (d Details) Budget() Budget           { return d.budget }
func (d Details) Activities() ActivityTags { return d.activities.Strings() }
func (d Details) SpecialRequests() string  { return d.specialRequests }

// DisplayType is the event type as shown to providers; "other" shows its label.
func (d Details) DisplayType() string {
	if d.eventType == EventTypeOther {
		return d.otherLabel
	}
	return d.eventType.String()
}
