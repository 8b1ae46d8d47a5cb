package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AustralVet/clinic-scheduler/internal/domain/appointment"
	"github.com/AustralVet/clinic-scheduler/internal/httperr"
	"github.com/AustralVet/clinic-scheduler/internal/models"
	"github.com/AustralVet/clinic-scheduler/internal/timezone"
)

// Códigos Postgres que nos interesan mapear a errores tipados.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

type ClinicGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewClinicGormRepository(db *gorm.DB, loc *time.Location) *ClinicGormRepository {
	if loc == nil {
		loc = timezone.Location("")
	}
	return &ClinicGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Entidades referenciadas
// --------------------------------------------------

func (r *ClinicGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("pet", id)
		}
		return nil, err
	}
	return &pet, nil
}

func (r *ClinicGormRepository) GetVeterinarian(
	ctx context.Context,
	id uint,
) (*models.Veterinarian, error) {

	var vet models.Veterinarian
	if err := r.db.WithContext(ctx).First(&vet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("veterinarian", id)
		}
		return nil, err
	}
	return &vet, nil
}

func (r *ClinicGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment", id)
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Agendamiento (leer-validar-escribir atómico)
// --------------------------------------------------

// Las escrituras de agenda corren en SERIALIZABLE: FOR UPDATE solo
// bloquea filas que existen, y con el día vacío dos reservas
// simultáneas leerían ambas un snapshot vacío y pasarían las reglas.
// Bajo serializable una de las dos falla con 40001 y el cliente
// reintenta (retry_booking).
var bookingTxOpts = &sql.TxOptions{Isolation: sql.LevelSerializable}

// conflictSnapshot carga, con FOR UPDATE, las citas programadas que las
// reglas 3–5 necesitan: mismo día del veterinario y cualquier cita
// abierta de la mascota con ese veterinario. Las dos lecturas ocurren
// dentro de la transacción tx, así las reglas ven un único estado.
func (r *ClinicGormRepository) conflictSnapshot(
	tx *gorm.DB,
	ap *models.Appointment,
	excludeID uint,
) (domain.Snapshot, error) {

	var snap domain.Snapshot

	dayStart, dayEnd := timezone.DayBounds(ap.ScheduledAt, r.loc)

	sameDay := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"veterinarian_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at < ?",
			ap.VeterinarianID, string(domain.StatusScheduled), dayStart, dayEnd,
		)
	if excludeID != 0 {
		sameDay = sameDay.Where("id <> ?", excludeID)
	}
	if err := sameDay.Order("scheduled_at ASC").Find(&snap.SameDay).Error; err != nil {
		return snap, err
	}

	openWithVet := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"pet_id = ? AND veterinarian_id = ? AND status = ?",
			ap.PetID, ap.VeterinarianID, string(domain.StatusScheduled),
		)
	if excludeID != 0 {
		openWithVet = openWithVet.Where("id <> ?", excludeID)
	}
	if err := openWithVet.Find(&snap.OpenWithVet).Error; err != nil {
		return snap, err
	}

	return snap, nil
}

func (r *ClinicGormRepository) Book(
	ctx context.Context,
	ap *models.Appointment,
	check func(domain.Snapshot) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		snap, err := r.conflictSnapshot(tx, ap, ap.ID)
		if err != nil {
			return err
		}

		if check != nil {
			if err := check(snap); err != nil {
				return err
			}
		}

		if ap.ID == 0 {
			return tx.Create(ap).Error
		}
		return tx.Save(ap).Error
	}, bookingTxOpts)

	return mapPgError(err)
}

// Transition aplica un cambio de estado con la fila bloqueada: carga
// con FOR UPDATE, corre apply y persiste solo si hubo cambio, todo en
// una transacción. Así cancelar y completar no pueden pisarse entre sí.
func (r *ClinicGormRepository) Transition(
	ctx context.Context,
	id uint,
	apply func(ap *models.Appointment) (bool, error),
) (*models.Appointment, bool, error) {

	var ap models.Appointment
	var changed bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("appointment", id)
			}
			return err
		}

		var err error
		changed, err = apply(&ap)
		if err != nil {
			return err
		}

		if !changed {
			return nil
		}
		return tx.Save(&ap).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &ap, changed, nil
}

// --------------------------------------------------
// Listados
// --------------------------------------------------

func (r *ClinicGormRepository) ListForPeriod(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Veterinarian").
		Where(
			"veterinarian_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			vetID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *ClinicGormRepository) CountScheduledForVet(
	ctx context.Context,
	vetID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("veterinarian_id = ? AND status = ?", vetID, string(domain.StatusScheduled)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (r *ClinicGormRepository) GetByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Consultation, error) {

	var cons models.Consultation
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&cons).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cons, nil
}

func (r *ClinicGormRepository) Register(
	ctx context.Context,
	cons *models.Consultation,
	ap *models.Appointment,
	followUp *models.Appointment,
	followUpCheck func(domain.Snapshot) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// El índice único sobre appointment_id cierra la carrera de
		// dos registros simultáneos para la misma cita.
		if err := tx.Create(cons).Error; err != nil {
			return err
		}

		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		if followUp != nil {
			snap, err := r.conflictSnapshot(tx, followUp, 0)
			if err != nil {
				return err
			}
			if followUpCheck != nil {
				if err := followUpCheck(snap); err != nil {
					return err
				}
			}
			if err := tx.Create(followUp).Error; err != nil {
				return err
			}
		}

		return nil
	}, bookingTxOpts)

	return mapPgError(err)
}

// --------------------------------------------------
// Mapeo de errores Postgres
// --------------------------------------------------

func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.TableName == "consultations" {
				return httperr.ErrValidation(
					httperr.RuleConsultationAlreadyExists,
					"la cita ya tiene una consulta registrada",
				)
			}
			return httperr.ErrBusiness("conflict")
		case pgSerializationFailure:
			return httperr.ErrBusiness(httperr.CodeRetryBooking)
		}
	}

	return err
}
