package request

type SubmitProposalRequest struct {
	DocumentRef string `json:"document_ref" binding:"required,max=2048"`
}
