package access

// Policy es la política fija de la clínica: quién agenda, quién
// atiende, quién audita. Reemplaza la comparación de strings de rol
// repartida por los llamadores.
type Policy struct {
	allowed map[Operation]map[Role]bool
}

func NewPolicy() *Policy {
	allow := func(roles ...Role) map[Role]bool {
		m := make(map[Role]bool, len(roles))
		for _, r := range roles {
			m[r] = true
		}
		return m
	}

	return &Policy{
		allowed: map[Operation]map[Role]bool{
			OpAppointmentCreate:     allow(RoleAdmin, RoleReceptionist),
			OpAppointmentReschedule: allow(RoleAdmin, RoleReceptionist),
			OpAppointmentCancel:     allow(RoleAdmin, RoleReceptionist),
			OpAppointmentComplete:   allow(RoleAdmin, RoleVeterinarian),
			OpConsultationRegister:  allow(RoleAdmin, RoleVeterinarian),
			OpVeterinarianDisable:   allow(RoleAdmin),
			OpAuditRead:             allow(RoleAdmin),
		},
	}
}

func (p *Policy) Can(role Role, op Operation) bool {
	roles, ok := p.allowed[op]
	if !ok {
		return false
	}
	return roles[role]
}
