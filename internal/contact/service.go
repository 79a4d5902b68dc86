package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func (s *ContactService) CreateSubmission(req CreateSubmissionRequest) (*ContactSubmission, error) {
	row := ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if row.Name == "" || row.Email == "" || row.Message == "" {
		return nil, errors.New("name, email and message are required")
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ContactService) ListSubmissions() ([]ContactSubmission, error) {
	var rows []ContactSubmission
	if err := s.DB.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ContactService) MarkRead(id uint, read bool) (*ContactSubmission, error) {
	var row ContactSubmission
	if err := s.DB.First(&row, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&row).Update("read", read).Error; err != nil {
		return nil, err
	}
	row.Read = read
	return &row, nil
}

// ExportXLSX renders the full inbox, newest first, as a single-sheet
// spreadsheet for offline triage.
func (s *ContactService) ExportXLSX() ([]byte, error) {
	rows, err := s.ListSubmissions()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	unreadStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFFF00"}},
	})

	sheet := "Submissions"
	defaultSheet := f.GetSheetName(0)
	f.NewSheet(sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{
		excelize.Cell{Value: "id", StyleID: headerStyle},
		excelize.Cell{Value: "name", StyleID: headerStyle},
		excelize.Cell{Value: "email", StyleID: headerStyle},
		excelize.Cell{Value: "subject", StyleID: headerStyle},
		excelize.Cell{Value: "message", StyleID: headerStyle},
		excelize.Cell{Value: "read", StyleID: headerStyle},
		excelize.Cell{Value: "created_at", StyleID: headerStyle},
	}
	_ = sw.SetRow("A1", header)

	rowNum := 2
	for _, r := range rows {
		values := []interface{}{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			r.Email,
			r.Subject,
			r.Message,
			fmt.Sprintf("%t", r.Read),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if !r.Read {
			for i, v := range values {
				values[i] = excelize.Cell{Value: v, StyleID: unreadStyle}
			}
		}

		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		_ = sw.SetRow(cell, values)
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	if defaultSheet != "" && defaultSheet != sheet {
		f.DeleteSheet(defaultSheet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
