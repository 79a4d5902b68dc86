package contact

type ContactServiceAPI interface {
	CreateSubmission(req CreateSubmissionRequest) (*ContactSubmission, error)
	ListSubmissions() ([]ContactSubmission, error)
	MarkRead(id uint, read bool) (*ContactSubmission, error)
	ExportXLSX() ([]byte, error)
}
