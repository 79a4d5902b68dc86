package topper

type TopperServiceAPI interface {
	GetAllToppers() ([]Topper, error)
	CreateTopper(req CreateTopperRequest) (*Topper, error)
	DeleteTopper(id int) error
}
