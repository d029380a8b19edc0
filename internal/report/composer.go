package report

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/go-pdf/fpdf"

	"renomester/internal/model"
)

// A4 layout constants in mm; coordinates follow the 210×297 page space.
const (
	pageLeft     = 15.0
	pageRight    = 195.0
	contentWidth = 180.0
	lineHeight   = 5.0
	tableRowH    = 7.0
)

var (
	indigo    = [3]int{79, 70, 229}
	slate     = [3]int{51, 65, 85}
	stripe    = [3]int{241, 245, 249}
	wsPattern = regexp.MustCompile(`\s+`)
)

// Filename derives the suggested download name for a project data sheet:
// whitespace runs become underscores and the "_adatlap.pdf" suffix is added.
func Filename(projectName string) string {
	return wsPattern.ReplaceAllString(projectName, "_") + "_adatlap.pdf"
}

// Compose renders the project data sheet as a single in-memory PDF.
//
// Sections are emitted strictly in order; the description block wraps to the
// content width and its measured height offsets everything below it. The
// output is a pure function of the inputs: the same project, children and
// generatedAt produce byte-identical documents.
func Compose(project *model.Project, tasks []model.Task, materials []model.Material, costs []model.Cost, generatedAt time.Time) ([]byte, error) {
	totals := ComputeTotals(materials, costs)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(indigo[0], indigo[1], indigo[2])
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(pageLeft, 20, "PROJEKT ADATLAP")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pageLeft, 30, tr(fmt.Sprintf("Generálva: %s", generatedAt.Format("2006. 01. 02. 15:04:05"))))
	pdf.Text(140, 30, "Renomester Management System")

	// Project info
	pdf.SetTextColor(0, 0, 0)
	sectionTitle(pdf, tr, "Projekt Információk", 55)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pageLeft, 65, tr(fmt.Sprintf("Név: %s", project.Name)))
	pdf.Text(pageLeft, 72, tr(fmt.Sprintf("Státusz: %s", StatusLabel(project.Status))))
	pdf.Text(pageLeft, 79, tr(fmt.Sprintf("Helyszín: %s", orDash(project.Location))))
	pdf.Text(110, 65, tr(fmt.Sprintf("Kezdés: %s", orDash(project.StartDate))))
	pdf.Text(110, 72, tr(fmt.Sprintf("Határidő: %s", orDash(project.EndDate))))

	// Customer info
	sectionTitle(pdf, tr, "Ügyfél Adatok", 95)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pageLeft, 105, tr(fmt.Sprintf("Név: %s", orDash(project.CustomerName))))
	pdf.Text(pageLeft, 112, tr(fmt.Sprintf("Email: %s", orDash(project.CustomerEmail))))
	pdf.Text(110, 105, tr(fmt.Sprintf("Telefon: %s", orDash(project.CustomerPhone))))

	// Description, wrapped; its height shifts every section below
	sectionTitle(pdf, tr, "Projekt Leírás", 125)
	pdf.SetFont("Helvetica", "", 10)
	lines := pdf.SplitText(tr(orDash(project.Description)), contentWidth)
	for i, line := range lines {
		pdf.Text(pageLeft, 135+float64(i)*lineHeight, line)
	}
	descHeight := float64(len(lines)) * lineHeight

	// Tasks
	y := 145 + descHeight
	taskRows := make([][]string, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		taskRows = append(taskRows, []string{t.Title, TaskStatusLabel(t.Status), orDash(t.DueDate)})
	}
	y = drawTable(pdf, tr, y, indigo, false,
		[]string{"Feladat", "Státusz", "Határidő"},
		[]float64{90, 45, 45},
		taskRows,
	)

	// Materials
	materialRows := make([][]string, 0, len(materials))
	for i := range materials {
		m := &materials[i]
		materialRows = append(materialRows, []string{
			m.Name,
			fmt.Sprintf("%s %s", m.Quantity.String(), m.Unit),
			FormatForint(m.UnitPrice),
			FormatForint(m.LineTotal()),
		})
	}
	y = drawTable(pdf, tr, y+15, slate, true,
		[]string{"Anyag megnevezése", "Mennyiség", "Egységár", "Összesen"},
		[]float64{70, 35, 35, 40},
		materialRows,
	)

	// Costs
	costRows := make([][]string, 0, len(costs))
	for i := range costs {
		c := &costs[i]
		costRows = append(costRows, []string{c.Description, CostTypeLabel(c.Type), FormatForint(c.Amount)})
	}
	y = drawTable(pdf, tr, y+15, slate, true,
		[]string{"Költség megnevezése", "Típus", "Összeg"},
		[]float64{90, 45, 45},
		costRows,
	)

	// Grand total footer
	finalY := y + 20
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pageLeft, finalY, tr("PROJEKT MINDÖSSZESEN:"))
	pdf.SetTextColor(indigo[0], indigo[1], indigo[2])
	pdf.Text(120, finalY, tr(FormatForint(totals.GrandTotal)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string, y float64) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pageLeft, y, tr(title))
	pdf.SetLineWidth(0.5)
	pdf.Line(pageLeft, y+2, pageRight, y+2)
}

// drawTable renders a head row and body rows starting at y and returns the
// y just below the table. An empty body still renders the head. Striped
// tables alternate a light fill; grid tables draw cell borders.
func drawTable(pdf *fpdf.Fpdf, tr func(string) string, y float64, headFill [3]int, grid bool, heads []string, widths []float64, rows [][]string) float64 {
	border := ""
	if grid {
		border = "1"
	}

	pdf.SetXY(pageLeft, y)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headFill[0], headFill[1], headFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, head := range heads {
		pdf.CellFormat(widths[i], tableRowH, tr(head), border, 0, "L", true, 0, "")
	}
	pdf.Ln(tableRowH)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for ri, row := range rows {
		pdf.SetX(pageLeft)
		fill := false
		if !grid && ri%2 == 1 {
			pdf.SetFillColor(stripe[0], stripe[1], stripe[2])
			fill = true
		}
		for ci, cell := range row {
			pdf.CellFormat(widths[ci], tableRowH, tr(cell), border, 0, "L", fill, 0, "")
		}
		pdf.Ln(tableRowH)
	}

	return pdf.GetY()
}

// orDash substitutes the placeholder dash for a blank optional field.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
