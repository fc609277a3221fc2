//go:build e2e

package e2e

import (
	"net/http"
	nethttptest "net/http/httptest"
	"sort"
	"sync"
	"time"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/user"
	resdto "event-customize/internal/handler/dto/response"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/testutil/httptest"

	"github.com/google/uuid"
)

const concurrentDeadline = 30 * time.Second

// openRequest funds requester, creates a request and moves it into the provider pool.
func (s *WorkflowTestSuite) openRequest(requester uuid.UUID) uuid.UUID {
	admin := uuid.New()
	s.fundWallet(requester, s.Config.Workflow.RequestCharge)
	created, code := s.create(requester, nil)
	s.Require().Equal(http.StatusCreated, code)
	for _, ev := range []eventrequest.Event{
		eventrequest.EventAdminReview,
		eventrequest.EventAdminApprove,
		eventrequest.EventAdminOpenToProviders,
	} {
		s.Require().Equal(http.StatusOK, s.transition(admin, created.RequestID, ev), ev.String())
	}
	return created.RequestID
}

// fanOut runs every call at once and waits for all of them, failing the test
// when they do not finish within concurrentDeadline.
func (s *WorkflowTestSuite) fanOut(calls []func() *nethttptest.ResponseRecorder) []*nethttptest.ResponseRecorder {
	out := make([]*nethttptest.ResponseRecorder, len(calls))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			out[i] = call()
		}()
	}
	close(start)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(concurrentDeadline):
		s.FailNow("concurrent calls did not finish", "waited %s for %d calls", concurrentDeadline, len(calls))
	}
	return out
}

func (s *WorkflowTestSuite) submitCall(requestID, providerID uuid.UUID, doc string) func() *nethttptest.ResponseRecorder {
	url := "/api/event-requests/" + requestID.String() + "/proposals"
	token := s.token(providerID, user.RoleUser)
	return func() *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"document_ref": doc}, token)
	}
}

func (s *WorkflowTestSuite) TestConcurrentSubmissions() {
	s.Run("more submitters than pooled connections all land", func() {
		requestID := s.openRequest(uuid.New())

		n := 3 * int(s.Config.DB.MaxConns)
		calls := make([]func() *nethttptest.ResponseRecorder, 0, n)
		for i := 0; i < n; i++ {
			p := uuid.New()
			s.addPartner(p, "Provider "+p.String()[:8], time.Now().Add(24*time.Hour))
			calls = append(calls, s.submitCall(requestID, p, "https://docs.example/"+p.String()+".pdf"))
		}

		positions := make([]int, 0, n)
		for _, w := range s.fanOut(calls) {
			var res resdto.SubmitProposalResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
			positions = append(positions, res.Position)
		}

		sort.Ints(positions)
		for i, p := range positions {
			s.Equal(i+1, p)
		}
	})

	s.Run("one provider racing itself submits once", func() {
		requester := uuid.New()
		requestID := s.openRequest(requester)
		p := uuid.New()
		s.addPartner(p, "Eager Provider", time.Now().Add(24*time.Hour))

		calls := make([]func() *nethttptest.ResponseRecorder, 8)
		for i := range calls {
			calls[i] = s.submitCall(requestID, p, "https://docs.example/eager.pdf")
		}

		created := 0
		for _, w := range s.fanOut(calls) {
			if w.Code == http.StatusCreated {
				created++
				continue
			}
			httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, string(errs.CodeDuplicateSubmission))
		}
		s.Equal(1, created)

		var stored int
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT count(*) FROM proposals WHERE request_id = $1 AND provider_id = $2`, requestID, p).Scan(&stored)
		s.Require().NoError(err)
		s.Equal(1, stored)
	})
}

func (s *WorkflowTestSuite) TestConcurrentAccepts() {
	s.Run("only one proposal wins", func() {
		requester := uuid.New()
		requestID := s.openRequest(requester)

		var proposalIDs []uuid.UUID
		for i := 0; i < 5; i++ {
			p := uuid.New()
			s.addPartner(p, "Bidder "+p.String()[:8], time.Now().Add(24*time.Hour))
			w := s.submitCall(requestID, p, "https://docs.example/"+p.String()+".pdf")()
			var res resdto.SubmitProposalResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
			proposalIDs = append(proposalIDs, res.ProposalID)
		}

		token := s.token(requester, user.RoleUser)
		calls := make([]func() *nethttptest.ResponseRecorder, len(proposalIDs))
		for i, id := range proposalIDs {
			url := "/api/event-requests/" + requestID.String() + "/proposals/" + id.String() + "/accept"
			calls[i] = func() *nethttptest.ResponseRecorder {
				return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, token)
			}
		}

		var winner uuid.UUID
		for _, w := range s.fanOut(calls) {
			if w.Code == http.StatusOK {
				var res resdto.AcceptProposalResponse
				httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
				s.Equal(uuid.Nil, winner, "second acceptance succeeded")
				winner = res.AcceptedProposalID
				continue
			}
			httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, string(errs.CodeInvalidState))
		}
		s.Require().NotEqual(uuid.Nil, winner)

		rows, err := s.DB.Query(s.T().Context(),
			`SELECT id, status FROM proposals WHERE request_id = $1`, requestID)
		s.Require().NoError(err)
		defer rows.Close()
		accepted := 0
		for rows.Next() {
			var (
				id     uuid.UUID
				status string
			)
			s.Require().NoError(rows.Scan(&id, &status))
			if status == "accepted" {
				accepted++
				s.Equal(winner, id)
			} else {
				s.Equal("rejected", status)
			}
		}
		s.Require().NoError(rows.Err())
		s.Equal(1, accepted)
	})
}
