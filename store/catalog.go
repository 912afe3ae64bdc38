package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"victorianails-backend/config"
	"victorianails-backend/models"
)

// ServicePatch carries the optional fields of a partial catalog update.
type ServicePatch struct {
	Name            *string
	DurationMinutes *int
	Price           *float64
	Description     *string
}

// ServiceCatalog holds the ordered collection of offered services.
// Appointments copy price and duration at booking time, so catalog
// edits and deletions never cascade into the appointment book.
type ServiceCatalog struct {
	mu      sync.Mutex
	storage *config.LocalStorage
	log     *zap.Logger
	items   []models.Service
}

// NewServiceCatalog loads the services bucket, seeding the default
// catalog when the bucket is absent or unreadable.
func NewServiceCatalog(storage *config.LocalStorage, log *zap.Logger) *ServiceCatalog {
	return &ServiceCatalog{
		storage: storage,
		log:     log,
		items:   loadBucket(storage, log, servicesBucket, models.SeedServices()),
	}
}

// Create assigns a fresh id, appends and persists.
func (c *ServiceCatalog) Create(draft models.Service) models.Service {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft.ID = uuid.NewString()
	c.items = append(c.items, draft)
	c.persist()
	return draft
}

// Update shallow-merges the patch into the entry with the given id and
// reports whether an entry matched.
func (c *ServiceCatalog) Update(id string, patch ServicePatch) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			c.items[i].Name = *patch.Name
		}
		if patch.DurationMinutes != nil {
			c.items[i].DurationMinutes = *patch.DurationMinutes
		}
		if patch.Price != nil {
			c.items[i].Price = *patch.Price
		}
		if patch.Description != nil {
			c.items[i].Description = *patch.Description
		}
		c.persist()
		return true
	}
	return false
}

// Remove deletes the entry with the given id; unknown ids are a no-op.
func (c *ServiceCatalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// Get returns the entry with the given id.
func (c *ServiceCatalog) Get(id string) (models.Service, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.items {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// List returns a copy of the full ordered catalog.
func (c *ServiceCatalog) List() []models.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Service(nil), c.items...)
}

func (c *ServiceCatalog) persist() {
	persistBucket(c.storage, c.log, servicesBucket, c.items)
}
