//go:build unit

package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"event-customize/internal/domain/user"
	"event-customize/internal/handler/api"
	resdto "event-customize/internal/handler/dto/response"
	commandsmock "event-customize/internal/mock/commands"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/testutil/httptest"
	"event-customize/internal/usecase/commands"
	"event-customize/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uploadURL = "/documents"

var pdfBytes = []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\n")

type DocumentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDocumentCommands
	actor        *user.Actor
}

func (s *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDocumentCommands(s.mockCtrl)
	s.actor = newActor(user.RoleUser)
	h := api.NewDocumentHandler(s.mockCommands, 1<<10)

	s.router.POST(uploadURL, fakeAuth(s.actor), h.Upload)
}

func (s *DocumentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDocumentHandlerSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}

// multipartBody builds a form with one part; an empty contentType leaves the part header unset.
func (s *DocumentHandlerTestSuite) multipartBody(field, contentType string, data []byte) ([]byte, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="proposal.pdf"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func (s *DocumentHandlerTestSuite) TestUpload() {
	s.Run("declared content type is kept", func() {
		body, ct := s.multipartBody("file", "application/pdf", pdfBytes)
		s.mockCommands.EXPECT().
			Upload(gomock.Any(), commands.UploadDocumentInput{ProviderID: s.actor.ID, ContentType: "application/pdf", Data: pdfBytes}).
			Return(&shared.UploadResult{Key: "proposals/abc.pdf", URL: "memory://proposals/abc.pdf"}, nil)

		w := httptest.PerformRaw(s.T(), s.router, http.MethodPost, uploadURL, body, ct, testToken)

		var res resdto.UploadDocumentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("proposals/abc.pdf", res.Key)
		s.Equal("memory://proposals/abc.pdf", res.URL)
	})

	s.Run("generic content type is sniffed", func() {
		body, ct := s.multipartBody("file", "application/octet-stream", pdfBytes)
		s.mockCommands.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.UploadDocumentInput) (*shared.UploadResult, error) {
				s.Equal("application/pdf", in.ContentType)
				return &shared.UploadResult{Key: "k", URL: "u"}, nil
			})

		w := httptest.PerformRaw(s.T(), s.router, http.MethodPost, uploadURL, body, ct, testToken)
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("unsupported type", func() {
		body, ct := s.multipartBody("file", "text/plain", []byte("hello"))
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, commands.ErrUnsupportedDocument)

		w := httptest.PerformRaw(s.T(), s.router, http.MethodPost, uploadURL, body, ct, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, string(errs.CodeValidation))
	})

	s.Run("wrong field name", func() {
		body, ct := s.multipartBody("attachment", "application/pdf", pdfBytes)
		w := httptest.PerformRaw(s.T(), s.router, http.MethodPost, uploadURL, body, ct, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, string(errs.CodeValidation))
	})

	s.Run("not multipart", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, uploadURL, map[string]any{"file": "x"}, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, string(errs.CodeValidation))
	})

	s.Run("body far over the limit", func() {
		body, ct := s.multipartBody("file", "application/pdf", bytes.Repeat([]byte("a"), 256<<10))
		w := httptest.PerformRaw(s.T(), s.router, http.MethodPost, uploadURL, body, ct, testToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, string(errs.CodeValidation))
	})
}
