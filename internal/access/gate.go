package access

// ======================================================
// ROLES Y OPERACIONES
// ======================================================

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleReceptionist Role = "receptionist"
	RoleClient       Role = "client"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleVeterinarian, RoleReceptionist, RoleClient:
		return Role(s), true
	}
	return "", false
}

type Operation string

const (
	OpAppointmentCreate     Operation = "appointment.create"
	OpAppointmentReschedule Operation = "appointment.reschedule"
	OpAppointmentCancel     Operation = "appointment.cancel"
	OpAppointmentComplete   Operation = "appointment.complete"
	OpConsultationRegister  Operation = "consultation.register"
	OpVeterinarianDisable   Operation = "veterinarian.disable"
	OpAuditRead             Operation = "audit.read"
)

// Gate decide, una vez por operación, si un rol puede invocarla.
// Un false se traduce en PermissionError, nunca en un no-op silencioso.
type Gate interface {
	Can(role Role, op Operation) bool
}
