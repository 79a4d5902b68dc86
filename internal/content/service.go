package content

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentService struct {
	DB *gorm.DB
}

// GetPageContent returns section -> content for one page, keyed
// alphabetically by section name so the JSON the admin panel
// round-trips is stable across reads.
func (s *ContentService) GetPageContent(pageSlug string) (*orderedmap.OrderedMap, error) {
	var rows []PageContent
	result := s.DB.
		Where("page_slug = ?", pageSlug).
		Order("section ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	out := orderedmap.New()
	for _, row := range rows {
		var val interface{}
		if len(row.Content) > 0 {
			if err := json.Unmarshal(row.Content, &val); err != nil {
				return nil, err
			}
		}
		out.Set(row.Section, val)
	}

	return out, nil
}

func (s *ContentService) UpsertSection(pageSlug, section string, content map[string]interface{}) (*PageContent, error) {
	pageSlug = strings.TrimSpace(pageSlug)
	section = strings.TrimSpace(section)
	if pageSlug == "" {
		return nil, errors.New("page slug is required")
	}
	if section == "" {
		return nil, errors.New("section is required")
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}

	var row PageContent
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Where("page_slug = ? AND section = ?", pageSlug, section).
			First(&row).Error

		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			row = PageContent{
				PageSlug: pageSlug,
				Section:  section,
				Content:  datatypes.JSON(raw),
			}
			return tx.Create(&row).Error
		}

		if err := tx.Model(&row).
			Update("content", datatypes.JSON(raw)).Error; err != nil {
			return err
		}
		row.Content = datatypes.JSON(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}
