package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/liphant/liphant-api/configs"
	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
)

const reportTemplate = `<!DOCTYPE html>
<html dir="ltr">
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2933; margin: 48px; }
  h1 { color: #0b7285; border-bottom: 2px solid #0b7285; padding-bottom: 8px; }
  .meta { color: #616e7c; margin-bottom: 32px; }
  .session { margin-bottom: 24px; page-break-inside: avoid; }
  .session h3 { margin-bottom: 4px; }
  .label { font-weight: bold; color: #3e4c59; }
</style>
</head>
<body>
  <h1>Progress Report</h1>
  <div class="meta">
    <p><span class="label">Child:</span> {{.ChildName}}</p>
    {{if .Diagnosis}}<p><span class="label">Diagnosis:</span> {{.Diagnosis}}</p>{{end}}
    <p><span class="label">Generated:</span> {{.GeneratedAt}}</p>
    <p><span class="label">Sessions covered:</span> {{.SessionCount}}</p>
  </div>
  {{range .Sessions}}
  <div class="session">
    <h3>{{.Date}}</h3>
    <p>{{.Summary}}</p>
    {{if .ProgressNotes}}<p><span class="label">Progress:</span> {{.ProgressNotes}}</p>{{end}}
    {{if .Goals}}<p><span class="label">Goals:</span> {{.Goals}}</p>{{end}}
  </div>
  {{end}}
</body>
</html>`

type reportSession struct {
	Date          string
	Summary       string
	ProgressNotes string
	Goals         string
}

type reportData struct {
	ChildName    string
	Diagnosis    string
	GeneratedAt  string
	SessionCount int
	Sessions     []reportSession
}

// GenerateProgressReport renders a PDF covering all of the child's
// session records, uploads it and persists the ProgressReport row.
func GenerateProgressReport(child models.Child) (models.ProgressReport, error) {
	var records []models.SessionRecord
	if err := database.DB.Preload("Booking").
		Where("child_id = ?", child.ID).
		Order("created_at asc").
		Find(&records).Error; err != nil {
		return models.ProgressReport{}, err
	}

	if len(records) == 0 {
		return models.ProgressReport{}, errors.New("no session records exist for this child yet")
	}

	htmlData, err := renderReportHTML(child, records)
	if err != nil {
		log.Printf("🔥 Failed to render progress report HTML: %v", err)
		return models.ProgressReport{}, err
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate progress report PDF: %v", err)
		return models.ProgressReport{}, err
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, child.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload progress report to Cloudinary: %v", err)
		return models.ProgressReport{}, err
	}

	report := models.ProgressReport{
		ChildID:   child.ID,
		ParentID:  child.ParentID,
		Title:     fmt.Sprintf("Progress Report for %s - %s", child.FullName, time.Now().Format("January 2006")),
		ReportURL: uploadURL,
	}

	if err := database.DB.Create(&report).Error; err != nil {
		return models.ProgressReport{}, err
	}

	log.Printf("✅ Generated progress report for child %s covering %d session(s).", child.ID, len(records))
	return report, nil
}

func renderReportHTML(child models.Child, records []models.SessionRecord) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", err
	}

	data := reportData{
		ChildName:    child.FullName,
		GeneratedAt:  time.Now().Format("January 2, 2006"),
		SessionCount: len(records),
	}
	if child.Diagnosis != nil {
		data.Diagnosis = *child.Diagnosis
	}

	for _, record := range records {
		session := reportSession{
			Date:    record.Booking.Date.Format("January 2, 2006"),
			Summary: record.Summary,
		}
		if record.ProgressNotes != nil {
			session.ProgressNotes = *record.ProgressNotes
		}
		if record.Goals != nil {
			session.Goals = *record.Goals
		}
		data.Sessions = append(data.Sessions, session)
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, childID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("reports/%s_%s", childID, uuid.New().String()),
		Folder:       "liphant_progress_reports",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
