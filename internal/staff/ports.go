package staff

type StaffServiceAPI interface {
	GetAllStaff() ([]StaffMember, error)
	CreateStaffMember(req CreateStaffMemberRequest) (*StaffMember, error)
	DeleteStaffMember(id int) error
}
