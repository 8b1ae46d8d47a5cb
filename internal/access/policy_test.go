package access

import "testing"

func TestPolicy(t *testing.T) {
	p := NewPolicy()

	cases := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleAdmin, OpAppointmentCreate, true},
		{RoleReceptionist, OpAppointmentCreate, true},
		{RoleVeterinarian, OpAppointmentCreate, false},
		{RoleClient, OpAppointmentCreate, false},

		{RoleReceptionist, OpAppointmentCancel, true},
		{RoleVeterinarian, OpAppointmentCancel, false},

		{RoleVeterinarian, OpAppointmentComplete, true},
		{RoleReceptionist, OpAppointmentComplete, false},

		{RoleVeterinarian, OpConsultationRegister, true},
		{RoleReceptionist, OpConsultationRegister, false},
		{RoleClient, OpConsultationRegister, false},

		{RoleAdmin, OpVeterinarianDisable, true},
		{RoleReceptionist, OpVeterinarianDisable, false},

		{RoleAdmin, OpAuditRead, true},
		{RoleVeterinarian, OpAuditRead, false},
	}

	for _, tc := range cases {
		if got := p.Can(tc.role, tc.op); got != tc.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}

func TestPolicyUnknownOperation(t *testing.T) {
	p := NewPolicy()
	if p.Can(RoleAdmin, Operation("does.not.exist")) {
		t.Fatal("operación desconocida nunca se permite")
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "veterinarian", "receptionist", "client"} {
		if _, ok := ParseRole(valid); !ok {
			t.Errorf("ParseRole(%q) debería aceptar", valid)
		}
	}

	for _, invalid := range []string{"", "ADMIN", "superuser", "vet"} {
		if _, ok := ParseRole(invalid); ok {
			t.Errorf("ParseRole(%q) debería rechazar", invalid)
		}
	}
}
