package format

import (
	"fmt"
	"time"

	"expense-bills-backend/internal/models"
)

// French month abbreviations, three letters as the UI shows them.
var months = [12]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Jui",
	"Jui", "Aoû", "Sep", "Oct", "Nov", "Déc",
}

// FormatDate renders an ISO date as "1 Jan. 24".
// Malformed input is returned unchanged: historical records contain
// dates that never parsed and they still have to display.
func FormatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		d, err = time.Parse(time.RFC3339, date)
	}
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s. %02d", d.Day(), months[d.Month()-1], d.Year()%100)
}

// FormatStatus maps a stored status to its display label.
// Unknown values pass through unchanged.
func FormatStatus(status string) string {
	switch status {
	case models.StatusPending:
		return "En attente"
	case models.StatusAccepted:
		return "Accepté"
	case models.StatusRefused:
		return "Refusé"
	}
	return status
}
