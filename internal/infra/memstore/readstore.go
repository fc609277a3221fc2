package memstore

import (
	"bytes"
	"context"
	"sort"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/provider"
	"event-customize/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.EventRequestReadStore = (*Store)(nil)
	_ queries.ProposalReadStore     = (*Store)(nil)
	_ provider.ProfileReader        = (*Store)(nil)
)

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.EventRequestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.requests[id]
	if !ok {
		return nil, eventrequest.ErrRequestNotFound
	}
	return s.requestView(row), nil
}

func (s *Store) FindByOwner(_ context.Context, ownerID uuid.UUID, status *eventrequest.Status, after *queries.Keyset, limit int) ([]*queries.EventRequestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]requestRow, 0)
	for _, row := range s.requests {
		if row.ownerID != ownerID {
			continue
		}
		if status != nil && row.status != *status {
			continue
		}
		if after != nil && !before(row, *after) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return before(rows[j], queries.Keyset{CreatedAt: rows[i].createdAt, ID: rows[i].id})
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]*queries.EventRequestView, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.requestView(row))
	}
	return out, nil
}

// before reports whether row sorts after k in newest-first order.
func before(row requestRow, k queries.Keyset) bool {
	if !row.createdAt.Equal(k.CreatedAt) {
		return row.createdAt.Before(k.CreatedAt)
	}
	return bytes.Compare(row.id[:], k.ID[:]) < 0
}

func (s *Store) FindOpen(_ context.Context, viewerID uuid.UUID) ([]*queries.OpenRequestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.OpenRequestView, 0)
	for _, row := range s.requests {
		if row.status != eventrequest.StatusShowPartnersMembers {
			continue
		}
		ids := s.byRequest[row.id]
		hasProposed := false
		for _, pid := range ids {
			if s.proposals[pid].provider.ProviderID == viewerID {
				hasProposed = true
				break
			}
		}
		d := row.details
		out = append(out, &queries.OpenRequestView{
			ID:              row.id,
			EventType:       d.EventType().String(),
			OtherLabel:      d.OtherLabel(),
			GuestCount:      d.GuestCount().Int(),
			Budget:          d.Budget().String(),
			Activities:      d.Activities(),
			SpecialRequests: d.SpecialRequests(),
			ProposalCount:   len(ids),
			HasProposed:     hasProposed,
			CreatedAt:       row.createdAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out, nil
}

func (s *Store) FindByRequest(_ context.Context, requestID uuid.UUID) ([]*queries.ProposalView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byRequest[requestID]
	out := make([]*queries.ProposalView, 0, len(ids))
	for _, id := range ids {
		out = append(out, proposalView(s.proposals[id]))
	}
	return out, nil
}

func (s *Store) FindByProvider(_ context.Context, providerID uuid.UUID) ([]*queries.MyProposalView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.MyProposalView, 0)
	for _, row := range s.proposals {
		if row.provider.ProviderID != providerID {
			continue
		}
		req := s.requests[row.requestID]
		out = append(out, &queries.MyProposalView{
			ProposalView:  *proposalView(row),
			RequestStatus: req.status.String(),
			EventType:     req.details.EventType().String(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (s *Store) FindProfile(_ context.Context, accountID uuid.UUID) (*provider.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[accountID]
	if !ok {
		return nil, provider.ErrProfileNotFound
	}
	return &p, nil
}

// requestView expects s.mu to be held.
func (s *Store) requestView(row requestRow) *queries.EventRequestView {
	d := row.details
	return &queries.EventRequestView{
		ID:              row.id,
		OwnerID:         row.ownerID,
		EventType:       d.EventType().String(),
		OtherLabel:      d.OtherLabel(),
		GuestCount:      d.GuestCount().Int(),
		Budget:          d.Budget().String(),
		Activities:      d.Activities(),
		SpecialRequests: d.SpecialRequests(),
		Status:          row.status.String(),
		Charge:          row.charge,
		PaymentStatus:   string(row.paymentStatus),
		AdminNote:       row.adminNote,
		ProcessedBy:     row.processedBy,
		ProcessedAt:     row.processedAt,
		ProposalCount:   len(s.byRequest[row.id]),
		CreatedAt:       row.createdAt,
		UpdatedAt:       row.updatedAt,
	}
}

func proposalView(row proposalRow) *queries.ProposalView {
	return &queries.ProposalView{
		ID:            row.id,
		RequestID:     row.requestID,
		ProviderID:    row.provider.ProviderID,
		ProviderName:  row.provider.Name,
		ProviderEmail: row.provider.Email,
		DocumentRef:   row.documentRef.String(),
		Status:        row.status.String(),
		Position:      row.position,
		SubmittedAt:   row.submittedAt,
		UpdatedAt:     row.updatedAt,
	}
}
