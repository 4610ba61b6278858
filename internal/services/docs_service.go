package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"jobsapi/internal/domain/models"
	"jobsapi/internal/utils"
)

// DocsService renders printable job sheets.
type DocsService struct {
	Jobs      JobService
	RequestID string
	Now       func() time.Time
}

// GenerateJobSheet returns a one-page PDF for the posting and a file name.
func (s DocsService) GenerateJobSheet(id int64) ([]byte, string, error) {
	job, err := s.Jobs.GetJob(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_job_sheet", fmt.Sprintf("job_id=%d", id))

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return buildJobSheetPDF(job, now())
}

func buildJobSheetPDF(job models.Job, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(job.Title, true)
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(job.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Department", job.Department},
		{"Location", job.Location},
		{"Type", job.Type},
		{"Posted", job.Posted},
		{"Reference", fmt.Sprintf("JOB-%05d", job.ID)},
	}
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 7, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(r[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Description", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(utils.NormalizeSpace(job.Description)), "", "L", false)

	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Printed "+printedAt.Format("2006-01-02 15:04"), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render job sheet: %w", err)
	}

	name := fmt.Sprintf("job-%d.pdf", job.ID)
	if s := slug(job.Title); s != "" {
		name = fmt.Sprintf("job-%d-%s.pdf", job.ID, s)
	}
	return buf.Bytes(), name, nil
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
