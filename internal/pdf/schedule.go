package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/limovia/fleetcrm/internal/i18n"
	"github.com/limovia/fleetcrm/internal/models"
)

// RenderSchedule draws the day schedule for an already filtered trip list:
// header band with the date and driver selection, one detail row per trip,
// footer with counts and revenue.
func RenderSchedule(w io.Writer, date, driver string, trips []models.Trip, lang string) error {
	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	// Header band
	p.SetFillColor(30, 41, 59)
	p.Rect(0, 0, 210, 26, "F")
	p.SetTextColor(255, 255, 255)
	p.SetFont("Helvetica", "B", 16)
	p.SetXY(10, 6)
	p.CellFormat(120, 8, tr(i18n.T(lang, "pdf_schedule")), "", 0, "L", false, 0, "")
	p.SetFont("Helvetica", "", 11)
	subtitle := date
	if driver != "" && driver != "all" {
		subtitle += " - " + driver
	}
	p.CellFormat(70, 8, tr(subtitle), "", 1, "R", false, 0, "")

	p.SetTextColor(0, 0, 0)
	p.SetY(34)

	if len(trips) == 0 {
		p.SetFont("Helvetica", "I", 11)
		p.CellFormat(190, 10, tr(i18n.T(lang, "pdf_no_trips")), "", 1, "C", false, 0, "")
	}

	var revenue float64
	for _, trip := range trips {
		revenue += trip.Price

		p.SetFont("Helvetica", "B", 10)
		p.SetFillColor(241, 245, 249)
		header := trip.TimeRange
		if header == "" {
			header = "--:--"
		}
		header += "  " + trip.ClientName
		p.CellFormat(150, 7, tr(header), "1", 0, "L", true, 0, "")
		p.CellFormat(40, 7, fmt.Sprintf("%.2f", trip.Price), "1", 1, "R", true, 0, "")

		p.SetFont("Helvetica", "", 9)
		route := trip.Pickup + " -> " + trip.Destination
		p.CellFormat(150, 6, tr(route), "LR", 0, "L", false, 0, "")
		p.CellFormat(40, 6, tr(string(trip.Status)), "LR", 1, "R", false, 0, "")

		detail := fmt.Sprintf("%s  |  %d pax", trip.DriverName, trip.Passengers)
		if trip.Notes != "" {
			detail += "  |  " + trip.Notes
		}
		p.CellFormat(190, 6, tr(detail), "LRB", 1, "L", false, 0, "")
		p.Ln(2)
	}

	// Footer
	p.SetY(-25)
	p.SetFont("Helvetica", "", 8)
	p.SetTextColor(100, 116, 139)
	footer := fmt.Sprintf("%d trips - %.2f", len(trips), revenue)
	p.CellFormat(190, 5, tr(footer), "T", 0, "C", false, 0, "")

	return p.Output(w)
}

// ScheduleFilename builds the download name for a schedule export.
func ScheduleFilename(date string) string {
	return "schedule_" + date + ".pdf"
}
