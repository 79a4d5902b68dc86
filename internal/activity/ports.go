package activity

type ActivityServiceAPI interface {
	GetAllActivities() ([]Activity, error)
	CreateActivity(req CreateActivityRequest) (*Activity, error)
	DeleteActivity(id int) error
}
