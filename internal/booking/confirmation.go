package booking

import (
	"fmt"
	"strings"
)

// ConfirmationText renders the plain-text confirmation block included in
// the confirm response for display and email.
func ConfirmationText(bookings []*ConfirmedBooking) string {
	var b strings.Builder
	b.WriteString("BOOKING CONFIRMATION\n")
	b.WriteString("===================\n")

	var total float64
	for _, bk := range bookings {
		fmt.Fprintf(&b, "\n%s: %s\n", strings.ToUpper(string(bk.Category)), bk.Name)
		fmt.Fprintf(&b, "Location: %s\n", bk.Location)
		fmt.Fprintf(&b, "Date: %s\n", bk.Date)
		if bk.Time != "" {
			fmt.Fprintf(&b, "Time: %s\n", bk.Time)
		}
		fmt.Fprintf(&b, "Price: %.0f %s\n", bk.Price, bk.Currency)
		fmt.Fprintf(&b, "Confirmation: %s\n", bk.ConfirmationNumber)
		fmt.Fprintf(&b, "Status: %s\n", bk.Status)
		total += bk.Price
	}

	fmt.Fprintf(&b, "\nTotal Amount: %.0f\n", total)
	b.WriteString("\nThank you for choosing our travel services!")
	return b.String()
}
