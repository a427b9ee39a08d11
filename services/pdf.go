package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tripchat/flights"
)

type PDFData struct {
	SearchID    string
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Source      string
	Itinerary   string
	Cards       []flights.Card
	Generated   time.Time
}

// core PDF fonts are cp1252; swap the glyphs the card views use
var pdfText = strings.NewReplacer("→", "->", "•", "|", "—", "-")

// GenerateItineraryPDF renders a recorded search and its offer cards and
// returns the raw bytes.
func GenerateItineraryPDF(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			text(fmt.Sprintf("TripChat travel planner · Not a booking confirmation · Page %d", pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripChat", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, text("Flight options for "+data.Destination), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	if data.Source == SourceEstimated {
		pdf.SetFillColor(255, 248, 225)
		pdf.SetDrawColor(212, 168, 67)
		pdf.SetTextColor(130, 90, 20)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetLineWidth(0.4)
		y := pdf.GetY()
		pdf.Rect(20, y, 170, 10, "FD")
		pdf.SetXY(23, y+3)
		pdf.MultiCell(164, 4,
			"ESTIMATED PRICES. Live flight search is not configured; verify every price before booking.",
			"", "C", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Ln(6)
	}

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(40, 6, text(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(130, 6, text(value), "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	route := data.Origin + " → " + data.Destination
	if data.ReturnDate != "" {
		route += " → " + data.Origin
	}
	row("Route", route)
	row("Departure", fmtDateReadable(data.DepartDate))
	if data.ReturnDate != "" {
		row("Return", fmtDateReadable(data.ReturnDate))
	}
	generated := data.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	row("Generated", generated.UTC().Format("02 Jan 2006, 15:04 UTC"))
	if data.SearchID != "" {
		row("Reference", data.SearchID)
	}
	pdf.Ln(4)

	// ── Itinerary ─────────────────────────────────────────────
	if data.Itinerary != "" {
		sectionHeader("Itinerary")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, text(data.Itinerary), "", "L", false)
		pdf.Ln(4)
	}

	// ── Offers ────────────────────────────────────────────────
	sectionHeader(fmt.Sprintf("Flight Offers (%d)", len(data.Cards)))
	if len(data.Cards) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(170, 6, "No flights found for that search.", "", 1, "L", false, 0, "")
	}
	for i, c := range data.Cards {
		pdf.SetFillColor(212, 168, 67)
		pdf.SetTextColor(13, 24, 37)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, text(fmt.Sprintf("#%d  %s", i+1, c.Price)), "", 0, "L", true, 0, "")
		pdf.CellFormat(130, 7, text(c.Airline), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		if c.Codes != "" {
			row("Flights", c.Codes)
		}
		row("Outbound", c.Outbound.Route+"  "+c.Outbound.Time)
		row("", c.Outbound.Meta)
		if c.Inbound != nil {
			row("Return", c.Inbound.Route+"  "+c.Inbound.Time)
			row("", c.Inbound.Meta)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
