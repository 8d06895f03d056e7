package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "travelcenter/internal/config"
	"travelcenter/internal/domain"
	"travelcenter/internal/domain/models"
	"travelcenter/internal/repositories"
	"travelcenter/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets as PDF.
type DocsService struct {
	BookingRepo  repositories.BookingRepository
	TripRepo     repositories.TripRepository
	CustomerRepo repositories.CustomerRepository
	DB           *sql.DB
	RequestID    string
	Loader       func(int64) (eticketData, error)
}

type eticketData struct {
	BookingID    int64
	BookingDate  string
	Status       string
	CustomerName string
	CustomerCode string
	TripCode     string
	Destination  string
	Price        float64
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo != nil {
		return s.BookingRepo
	}
	return repositories.NewBookingRepository(s.db())
}

func (s DocsService) trips() repositories.TripRepository {
	if s.TripRepo != nil {
		return s.TripRepo
	}
	return repositories.NewTripRepository(s.db())
}

func (s DocsService) customers() repositories.CustomerRepository {
	if s.CustomerRepo != nil {
		return s.CustomerRepo
	}
	return repositories.NewCustomerRepository(s.db())
}

// GenerateETicket renders the e-ticket for a Confirmed booking owned by
// customerID. Cancelled bookings have no ticket.
func (s DocsService) GenerateETicket(customerID, bookingID int64) ([]byte, string, error) {
	data, err := s.loadETicketData(customerID, bookingID)
	if err != nil {
		return nil, "", err
	}
	if data.Status != models.BookingConfirmed {
		return nil, "", domain.StateError{Resource: "booking", Msg: "no e-ticket for a cancelled booking"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func (s DocsService) loadETicketData(customerID, bookingID int64) (eticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return eticketData{}, err
	}
	if b.CustomerID != customerID {
		return eticketData{}, domain.NotFoundError{Resource: "booking"}
	}

	out := eticketData{
		BookingID:   b.ID,
		BookingDate: b.BookingDate,
		Status:      b.Status,
	}
	if trip, err := s.trips().GetByID(b.TripID); err == nil {
		out.TripCode = trip.Code
		out.Destination = trip.Destination
		out.Price = trip.Price
	}
	if customer, err := s.customers().GetByID(b.CustomerID); err == nil {
		out.CustomerName = customer.FullName
		out.CustomerCode = customer.Code
	}
	return out, nil
}

func buildETicketPDF(d eticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL CENTER E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref  : #%d", d.BookingID),
		fmt.Sprintf("Passenger    : %s (%s)", safe(d.CustomerName, "-"), safe(d.CustomerCode, "-")),
		fmt.Sprintf("Trip         : %s", safe(d.TripCode, "-")),
		fmt.Sprintf("Destination  : %s", safe(d.Destination, "-")),
		fmt.Sprintf("Price        : %s", utils.FormatMoney(d.Price)),
		fmt.Sprintf("Booked On    : %s", safe(d.BookingDate, "-")),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers one passenger. Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	filename := fmt.Sprintf("eticket-%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
