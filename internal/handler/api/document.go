package api

import (
	"io"
	"net/http"

	resdto "event-customize/internal/handler/dto/response"
	"event-customize/internal/handler/httperr"
	"event-customize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries and part headers around the file.
const multipartOverhead = 64 << 10

type DocumentHandler struct {
	cmds    commands.DocumentCommands
	maxSize int64
}

func NewDocumentHandler(cmds commands.DocumentCommands, maxSize int64) *DocumentHandler {
	return &DocumentHandler{cmds: cmds, maxSize: maxSize}
}

// @Summary Upload proposal document
// @Description Store a proposal document and get back the reference to submit with a proposal.
// @Tags proposals
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document (pdf, png, jpeg, doc, docx)"
// @Success 201 {object} resdto.UploadDocumentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/proposal-documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, err, "Multipart field file is required")
		return
	}
	f, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, err, "Unreadable file")
		return
	}
	defer f.Close()

	reader := io.Reader(f)
	if h.maxSize > 0 {
		// One byte past the limit is enough for the size check to fail.
		reader = io.LimitReader(f, h.maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		httperr.BadRequest(c, err, "Unreadable file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	res, err := h.cmds.Upload(c.Request.Context(), commands.UploadDocumentInput{
		ProviderID:  a.ID,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUploadResult(res))
}
