package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"victorianails-backend/config"
	"victorianails-backend/models"
)

// AppointmentPatch carries the optional fields of a partial update.
// Nil fields are left untouched.
type AppointmentPatch struct {
	ClientName      *string
	ClientPhone     *string
	ServiceName     *string
	Date            *time.Time
	TimeSlot        *string
	DurationMinutes *int
	Price           *float64
	PaymentMethod   *models.PaymentMethod
	Status          *models.Status
	Notes           *string
}

// AppointmentStore holds the ordered appointment collection.
type AppointmentStore struct {
	mu      sync.Mutex
	storage *config.LocalStorage
	log     *zap.Logger
	items   []models.Appointment
}

// NewAppointmentStore loads the appointments bucket, seeding the demo
// schedule when the bucket is absent or unreadable.
func NewAppointmentStore(storage *config.LocalStorage, log *zap.Logger) *AppointmentStore {
	return &AppointmentStore{
		storage: storage,
		log:     log,
		items:   loadBucket(storage, log, appointmentsBucket, models.SeedAppointments()),
	}
}

// Create assigns a fresh id, appends and persists. Field validation is
// the caller's job; an empty status defaults to pending.
func (s *AppointmentStore) Create(draft models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	if draft.Status == "" {
		draft.Status = models.StatusPending
	}
	s.items = append(s.items, draft)
	s.persist()
	return draft
}

// Update shallow-merges the patch into the record with the given id and
// reports whether a record matched. An unknown id leaves the collection
// untouched.
func (s *AppointmentStore) Update(id string, patch AppointmentPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		applyAppointmentPatch(&s.items[i], patch)
		s.persist()
		return true
	}
	return false
}

// SetStatus writes the status without consulting the transition graph,
// preserving the permissive merge behavior of the generic update.
func (s *AppointmentStore) SetStatus(id string, status models.Status) bool {
	return s.Update(id, AppointmentPatch{Status: &status})
}

// Remove deletes the record with the given id; unknown ids are a no-op.
func (s *AppointmentStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Get returns the record with the given id.
func (s *AppointmentStore) Get(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.items {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// List returns a copy of the full ordered collection.
func (s *AppointmentStore) List() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Appointment(nil), s.items...)
}

func (s *AppointmentStore) persist() {
	persistBucket(s.storage, s.log, appointmentsBucket, s.items)
}

func applyAppointmentPatch(a *models.Appointment, p AppointmentPatch) {
	if p.ClientName != nil {
		a.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		a.ClientPhone = *p.ClientPhone
	}
	if p.ServiceName != nil {
		a.ServiceName = *p.ServiceName
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.TimeSlot != nil {
		a.TimeSlot = *p.TimeSlot
	}
	if p.DurationMinutes != nil {
		a.DurationMinutes = *p.DurationMinutes
	}
	if p.Price != nil {
		a.Price = *p.Price
	}
	if p.PaymentMethod != nil {
		a.PaymentMethod = *p.PaymentMethod
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
