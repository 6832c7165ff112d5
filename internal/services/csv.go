package services

import (
	"io"
	"time"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	apperrors "github.com/Mod-Checkup/mod-checkup-backend/pkg/errors"
	"github.com/gocarina/gocsv"
	"gorm.io/gorm"
)

// Bulk import/export is batch glue around the comment create path; every
// imported row goes through the same validation as a live submission.

type commentImportRow struct {
	BasePost  string `csv:"base_post"`
	Commenter string `csv:"commenter"`
	Body      string `csv:"body"`
}

type commentExportRow struct {
	ID        string `csv:"id"`
	BasePost  string `csv:"base_post"`
	Commenter string `csv:"commenter"`
	Body      string `csv:"body"`
	Active    bool   `csv:"active"`
	CreatedAt string `csv:"created_at"`
}

// ImportSummary is appended to the import response so callers can see how
// many rows made it in.
type ImportSummary struct {
	TotalRecords    int `json:"Total_Records"`
	RecordsInserted int `json:"Records_inserted"`
	RecordsError    int `json:"Records_error"`
}

// ImportCommentsCSV reads CSV rows from r and creates a comment per row,
// skipping rows that fail validation. Returns the created comments and a
// summary; the CSV being unparsable at all is a BadRequest.
func ImportCommentsCSV(db *gorm.DB, r io.Reader) ([]models.Comment, ImportSummary, error) {
	var rows []*commentImportRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, ImportSummary{}, apperrors.BadRequest("Malformed CSV file")
	}

	summary := ImportSummary{TotalRecords: len(rows)}
	imported := make([]models.Comment, 0, len(rows))

	for _, row := range rows {
		comment := models.Comment{
			PostID:      row.BasePost,
			CommenterID: row.Commenter,
			Body:        row.Body,
		}
		if err := CreateComment(db, &comment); err != nil {
			summary.RecordsError++
			continue
		}
		imported = append(imported, comment)
	}
	summary.RecordsInserted = summary.TotalRecords - summary.RecordsError

	return imported, summary, nil
}

// ExportCommentsCSV dumps every comment, newest first, to w.
func ExportCommentsCSV(db *gorm.DB, w io.Writer) error {
	var comments []models.Comment
	if err := db.Order("created_at desc").Find(&comments).Error; err != nil {
		return err
	}

	rows := make([]*commentExportRow, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, &commentExportRow{
			ID:        c.ID,
			BasePost:  c.PostID,
			Commenter: c.CommenterID,
			Body:      c.Body,
			Active:    c.Active,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}

	return gocsv.Marshal(&rows, w)
}
