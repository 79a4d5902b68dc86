package staff

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StaffService struct {
	DB *gorm.DB
}

func (s *StaffService) GetAllStaff() ([]StaffMember, error) {
	var members []StaffMember
	result := s.DB.Order("name ASC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (s *StaffService) CreateStaffMember(req CreateStaffMemberRequest) (*StaffMember, error) {
	member := StaffMember{
		Name:          req.Name,
		Designation:   req.Designation,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Bio:           req.Bio,
		Email:         req.Email,
		ImageURL:      req.ImageURL,
	}

	if len(req.Subjects) > 0 {
		member.Subjects = pq.StringArray(req.Subjects)
	}

	if err := s.DB.Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *StaffService) DeleteStaffMember(id int) error {
	result := s.DB.Delete(&StaffMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
