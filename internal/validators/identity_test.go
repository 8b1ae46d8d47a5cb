package validators

import "testing"

func TestIsValidRUT(t *testing.T) {
	valid := []string{
		"12345678-9",
		"12.345.678-9",
		"9876543-K",
		"1234567",
	}
	for _, rut := range valid {
		if !IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = false", rut)
		}
	}

	invalid := []string{
		"",
		"123",
		"12345678-91234",
		"12 345 678-9",
		"rut@invalido",
	}
	for _, rut := range invalid {
		if IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = true", rut)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+56912345678",
		"912345678",
		"22123456",
	}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false", phone)
		}
	}

	invalid := []string{
		"",
		"1234567",          // muy corto
		"+56 9 1234 5678",  // espacios
		"telefono",
		"1234567890123456", // muy largo
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true", phone)
		}
	}
}
