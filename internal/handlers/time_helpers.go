package handlers

import "time"

// Todo parseo de fecha/hora de la API se ancla a la zona de la clínica.

func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseDateTime(loc *time.Location, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}
