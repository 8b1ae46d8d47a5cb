package httperr

import (
	"errors"
	"fmt"
)

// ======================================================
// REGLAS DE VALIDACIÓN
// ======================================================

type Rule string

const (
	RulePastDate                  Rule = "past_date"
	RuleInactivePet               Rule = "inactive_pet"
	RuleDailyCapacityExceeded     Rule = "daily_capacity_exceeded"
	RuleMinimumSeparationViolated Rule = "minimum_separation_violated"
	RuleDuplicateActiveEngagement Rule = "duplicate_active_engagement"
	RuleCostOutOfRange            Rule = "cost_out_of_range"
	RuleFollowUpInPast            Rule = "follow_up_in_past"
	RuleConsultationAlreadyExists Rule = "consultation_already_exists"
	RuleInvalidStateTransition    Rule = "invalid_state_transition"
)

// ValidationError identifica qué regla falló y el valor ofensivo,
// para que la capa HTTP lo muestre sin perder información.
type ValidationError struct {
	Rule   Rule
	Detail string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
}

func ErrValidation(rule Rule, detail string) error {
	return ValidationError{Rule: rule, Detail: detail}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsRule(err error, rule Rule) bool {
	if ve, ok := AsValidation(err); ok {
		return ve.Rule == rule
	}
	return false
}

// ======================================================
// NOT FOUND / PERMISOS
// ======================================================

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func ErrNotFound(entity string, id uint) error {
	return NotFoundError{Entity: entity, ID: id}
}

func AsNotFound(err error) (NotFoundError, bool) {
	var ne NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}

type PermissionError struct {
	Operation string
}

func (e PermissionError) Error() string {
	return fmt.Sprintf("operation %s not allowed", e.Operation)
}

func ErrPermission(operation string) error {
	return PermissionError{Operation: operation}
}

func AsPermission(err error) (PermissionError, bool) {
	var pe PermissionError
	ok := errors.As(err, &pe)
	return pe, ok
}
