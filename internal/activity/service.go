package activity

import (
	"gorm.io/gorm"
)

type ActivityService struct {
	DB *gorm.DB
}

func (s *ActivityService) GetAllActivities() ([]Activity, error) {
	var activities []Activity
	result := s.DB.Order("display_order ASC").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}
	return activities, nil
}

func (s *ActivityService) CreateActivity(req CreateActivityRequest) (*Activity, error) {
	row := Activity{
		Title:        req.Title,
		Description:  req.Description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

func (s *ActivityService) DeleteActivity(id int) error {
	result := s.DB.Delete(&Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
