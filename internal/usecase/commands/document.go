package commands

//go:generate mockgen -source=document.go -destination=../../mock/commands/document.go -package=commandsmock

import (
	"context"
	"mime"
	"strings"

	"event-customize/internal/domain/provider"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyDocument       = errs.Mark(errs.New("document is empty"), errs.ErrValidation)
	ErrDocumentTooLarge    = errs.Mark(errs.New("document exceeds the upload size limit"), errs.ErrValidation)
	ErrUnsupportedDocument = errs.Mark(errs.New("document type is not supported"), errs.ErrValidation)
)

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"image/png":          true,
	"image/jpeg":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type UploadDocumentInput struct {
	ProviderID  uuid.UUID
	ContentType string
	Data        []byte
}

type DocumentCommands interface {
	// Upload stores a proposal document for an eligible provider and returns the reference to submit with.
	Upload(ctx context.Context, in UploadDocumentInput) (*shared.UploadResult, error)
}

type documentCommandsImpl struct {
	storage shared.ObjectStorage
	gate    *provider.Gate
	maxSize int64
}

func NewDocumentCommands(storage shared.ObjectStorage, gate *provider.Gate, maxSize int64) DocumentCommands {
	return &documentCommandsImpl{storage: storage, gate: gate, maxSize: maxSize}
}

func (uc *documentCommandsImpl) Upload(ctx context.Context, in UploadDocumentInput) (*shared.UploadResult, error) {
	if len(in.Data) == 0 {
		return nil, ErrEmptyDocument
	}
	if uc.maxSize > 0 && int64(len(in.Data)) > uc.maxSize {
		return nil, ErrDocumentTooLarge
	}
	mediaType, _, err := mime.ParseMediaType(in.ContentType)
	if err != nil || !allowedDocumentTypes[strings.ToLower(mediaType)] {
		return nil, ErrUnsupportedDocument
	}

	if _, err := uc.gate.Admit(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	res, err := uc.storage.Upload(ctx, in.Data, mediaType)
	if err != nil {
		return nil, errs.Wrap(err, "upload proposal document")
	}
	return res, nil
}
