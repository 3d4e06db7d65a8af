package usecase

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/forest-management-gis/internal/domain"
)

const (
	reportTitle      = "Forest Management Report"
	reportFontFamily = "Helvetica"
	reportUTF8Family = "report"
)

// reportPDF - A4 документ отчёта с таблицами в едином стиле
type reportPDF struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
	// lost - сколько строк потеряли символы при переводе в cp1252
	lost int
}

func newReportPDF(fontPath string, generatedAt time.Time) *reportPDF {
	pdf := fpdf.New("P", "mm", "A4", "")
	r := &reportPDF{pdf: pdf, family: reportFontFamily}

	if fontPath != "" {
		pdf.AddUTF8Font(reportUTF8Family, "", fontPath)
		pdf.AddUTF8Font(reportUTF8Family, "B", fontPath)
		pdf.AddUTF8Font(reportUTF8Family, "I", fontPath)
		r.family = reportUTF8Family
		r.tr = func(s string) string { return s }
	} else {
		// встроенные шрифты понимают только cp1252, остальные символы заменяются точкой
		toCP1252 := pdf.UnicodeTranslatorFromDescriptor("")
		r.tr = func(s string) string {
			out := toCP1252(s)
			if strings.Count(out, ".") > strings.Count(s, ".") {
				r.lost++
			}
			return out
		}
	}

	pdf.SetTitle(reportTitle, true)
	pdf.SetCreator("forest-management-gis", true)
	pdf.SetCreationDate(generatedAt)
	pdf.AliasNbPages("")

	stamp := generatedAt.Format("2006-01-02 15:04:05")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(r.family, "I", 8)
		pdf.SetTextColor(96, 96, 96)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated: %s", stamp), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	return r
}

func (r *reportPDF) title(text string) {
	r.pdf.SetFont(r.family, "B", 20)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.CellFormat(0, 14, r.tr(text), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *reportPDF) heading(text string) {
	r.pdf.SetFont(r.family, "B", 14)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.CellFormat(0, 10, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

// table рисует таблицу: серая шапка, бежевые строки, сетка
func (r *reportPDF) table(widths []float64, header []string, rows [][]string) {
	r.pdf.SetFont(r.family, "B", 10)
	r.pdf.SetFillColor(128, 128, 128)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], 8, r.tr(h), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont(r.family, "", 10)
	r.pdf.SetFillColor(245, 245, 220)
	r.pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			r.pdf.CellFormat(widths[i], 7, r.tr(cell), "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(6)
}

func (r *reportPDF) summary(s *domain.AnalyticsSummary) {
	r.heading("Summary")
	rows := [][]string{
		{"Total trees", formatInt(s.TotalTrees)},
		{"Healthy trees", formatInt(s.HealthyTrees)},
		{"Warning trees", formatInt(s.WarningTrees)},
		{"Critical trees", formatInt(s.CriticalTrees)},
		{"Work areas", formatInt(s.TotalAreas)},
		{"GPS tracks", formatInt(s.TotalTracks)},
		{"Measurements", formatInt(s.TotalMeasurements)},
	}
	r.table([]float64{95, 95}, []string{"Item", "Value"}, rows)
}

func (r *reportPDF) trees(trees []*domain.Tree) {
	r.heading("Trees")
	rows := make([][]string, 0, len(trees))
	for _, t := range trees {
		rows = append(rows, []string{
			shortID(t.ID),
			t.Species,
			t.Health,
			formatFloat(t.Diameter),
			formatFloat(t.Height),
		})
	}
	r.table(
		[]float64{30, 55, 35, 35, 35},
		[]string{"ID", "Species", "Health", "Diameter (cm)", "Height (m)"},
		rows,
	)
}

func (r *reportPDF) areas(areas []*domain.WorkArea) {
	r.heading("Work areas")
	rows := make([][]string, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, []string{
			a.Name,
			a.Status,
			formatInt(a.TreeCount),
			strconv.Itoa(len(a.Boundary)),
		})
	}
	r.table(
		[]float64{70, 40, 40, 40},
		[]string{"Name", "Status", "Trees", "Boundary points"},
		rows,
	)
}

func (r *reportPDF) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// shortID - первые 8 символов id
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
