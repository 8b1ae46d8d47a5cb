package validators

import "regexp"

var (
	rutRegex   = regexp.MustCompile(`^[0-9A-Za-z.\-]{7,12}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// IsValidRUT acepta RUT/DNI con o sin puntos y guión.
func IsValidRUT(rut string) bool {
	return rutRegex.MatchString(rut)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
