package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"train-booking/models"
)

// RenderTicket draws the printable e-ticket of a booking
func RenderTicket(b models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.ID, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Electronic Reservation Slip", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Booking ID: "+b.ID+"    Status: "+b.Status, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	t := b.TrainDetails
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", t.TrainNumber, t.TrainName), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	rows := [][2]string{
		{"From", t.From},
		{"To", t.To},
		{"Date", t.Date},
		{"Departure", t.DepartureTime},
		{"Arrival", t.ArrivalTime},
		{"Duration", t.Duration},
		{"Class", t.TravelClass},
		{"Quota", t.Quota},
	}
	for _, r := range rows {
		pdf.CellFormat(40, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	widths := []float64{10, 70, 20, 30, 50}
	for i, h := range []string{"#", "Name", "Age", "Gender", "Berth"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, p := range b.Passengers {
		cells := []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.Age), string(p.Gender), string(p.Berth)}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	f := b.PaymentSummary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Payment Summary", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, r := range []struct {
		label  string
		amount int
	}{
		{fmt.Sprintf("Base Fare (%s x %d)", t.TravelClass, len(b.Passengers)), f.BaseFare},
		{"Catering Charges", f.CateringCharge},
		{"GST (5%)", f.GST},
		{"Convenience Fee", f.ConvenienceFee},
	} {
		pdf.CellFormat(120, 6, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, "INR "+strconv.Itoa(r.amount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "INR "+strconv.Itoa(f.Total), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 4, fmt.Sprintf("Booked on %s. Contact: %s, %s.",
		b.CreatedAt.Format("2006-01-02 15:04 MST"), b.ContactInfo.Email, b.ContactInfo.Phone), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}
