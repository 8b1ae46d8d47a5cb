package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid revisa que el dominio del correo resuelva en DNS:
// primero MX y, como respaldo, un registro A/AAAA. No valida el buzón,
// solo descarta dominios inventados en el registro.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
