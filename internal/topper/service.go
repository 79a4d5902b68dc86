package topper

import (
	"gorm.io/gorm"
)

type TopperService struct {
	DB *gorm.DB
}

func (s *TopperService) GetAllToppers() ([]Topper, error) {
	var toppers []Topper
	result := s.DB.Order("year DESC, percentage DESC").Find(&toppers)
	if result.Error != nil {
		return nil, result.Error
	}
	return toppers, nil
}

func (s *TopperService) CreateTopper(req CreateTopperRequest) (*Topper, error) {
	row := Topper{
		Name:        req.Name,
		Class:       req.Class,
		Percentage:  req.Percentage,
		Year:        req.Year,
		Achievement: req.Achievement,
		ImageURL:    req.ImageURL,
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

func (s *TopperService) DeleteTopper(id int) error {
	result := s.DB.Delete(&Topper{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
