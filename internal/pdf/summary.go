// Package pdf renders the evaluation summary page and merges it with the
// compiled resume into the final deliverable.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Summary page layout constants (A4, point units).
const (
	leftMargin    = 100.0
	headerY       = 40.0
	companyY      = 70.0
	scoreY        = 90.0
	feedbackTopY  = 120.0
	lineSpacing   = 15.0
	bottomMargin  = 50.0
	rightPadding  = 140.0
	feedbackSize  = 11.0
	bodyFontSize  = 12.0
	titleFontSize = 14.0
)

// RenderSummaryPage draws the evaluation summary: a header, the company
// label (or "N/A"), the numeric score, the word-wrapped feedback one line
// per row with automatic page breaks, and the optimization note when set.
func RenderSummaryPage(score int, feedback, optimizationNote, companyName string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	pageWidth, pageHeight := doc.GetPageSize()
	maxWidth := pageWidth - rightPadding

	doc.AddPage()
	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.Text(leftMargin, headerY, "Resume Evaluation Summary")

	if companyName == "" {
		companyName = "N/A"
	}
	doc.SetFont("Helvetica", "", bodyFontSize)
	doc.Text(leftMargin, companyY, fmt.Sprintf("Company: %s", companyName))
	doc.Text(leftMargin, scoreY, fmt.Sprintf("Score: %d/10", score))

	doc.SetFont("Helvetica", "", feedbackSize)

	var wrapped []string
	for _, line := range strings.Split(feedback, "\n") {
		wrapped = append(wrapped, doc.SplitText(line, maxWidth)...)
	}
	if optimizationNote != "" {
		wrapped = append(wrapped, "", "Note: "+optimizationNote)
	}

	y := feedbackTopY
	for _, line := range wrapped {
		if y > pageHeight-bottomMargin {
			doc.AddPage()
			doc.SetFont("Helvetica", "", feedbackSize)
			y = bottomMargin
		}
		doc.Text(leftMargin, y, line)
		y += lineSpacing
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render summary page: %w", err)
	}
	return buf.Bytes(), nil
}
