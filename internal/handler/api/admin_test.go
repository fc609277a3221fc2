//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"event-customize/internal/domain/eventrequest"
	"event-customize/internal/domain/user"
	"event-customize/internal/handler/api"
	resdto "event-customize/internal/handler/dto/response"
	commandsmock "event-customize/internal/mock/commands"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/testutil/httptest"
	"event-customize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventRequestCommands
	actor        *user.Actor
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventRequestCommands(s.mockCtrl)
	s.actor = newActor(user.RoleAdmin)
	h := api.NewAdminHandler(s.mockCommands)

	s.router.POST("/admin/event-requests/:id/transition", fakeAuth(s.actor), h.Transition)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestTransition() {
	requestID := uuid.New()
	url := "/admin/event-requests/" + requestID.String() + "/transition"

	s.Run("applied with note", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), commands.TransitionInput{
				RequestID: requestID,
				Event:     "AdminReview",
				AdminID:   s.actor.ID,
				Note:      "looks good",
			}).
			Return(&commands.TransitionResult{
				RequestID: requestID,
				From:      eventrequest.StatusPending,
				To:        eventrequest.StatusUnderReview,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"event": "AdminReview", "note": "looks good"}, testToken)

		var res resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(requestID, res.RequestID)
		s.Equal(eventrequest.StatusPending.String(), res.From)
		s.Equal(eventrequest.StatusUnderReview.String(), res.To)
		s.NotNil(res.RejectedProposalIDs)
		s.Empty(res.RejectedProposalIDs)
	})

	s.Run("note is optional", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), commands.TransitionInput{
				RequestID: requestID,
				Event:     "AdminForceReject",
				AdminID:   s.actor.ID,
			}).
			Return(&commands.TransitionResult{
				RequestID:           requestID,
				From:                eventrequest.StatusShowPartnersMembers,
				To:                  eventrequest.StatusRejected,
				RejectedProposalIDs: []uuid.UUID{uuid.New(), uuid.New()},
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"event": "AdminForceReject"}, testToken)

		var res resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res.RejectedProposalIDs, 2)
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   errs.Code
	}{
		{name: "edge not allowed", err: eventrequest.ErrInvalidTransition, status: http.StatusConflict, code: errs.CodeInvalidState},
		{name: "unknown event", err: eventrequest.ErrUnknownEvent, status: http.StatusBadRequest, code: errs.CodeValidation},
		{name: "requester event", err: commands.ErrNotAdminEvent, status: http.StatusBadRequest, code: errs.CodeValidation},
		{name: "unknown request", err: eventrequest.ErrRequestNotFound, status: http.StatusNotFound, code: errs.CodeNotFound},
	}
	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"event": "AdminReview"}, testToken)
			httptest.AssertErrorResponse(s.T(), w, tc.status, string(tc.code))
		})
	}

	s.Run("missing event", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"note": "x"}, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, string(errs.CodeValidation))
	})
}
