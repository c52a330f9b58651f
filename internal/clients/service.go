package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stroytechnika/pumpdesk/internal/resource"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	opServiceNew = "clients.service.new"
	opList       = "clients.list"
	opGet        = "clients.get"
	opCreate     = "clients.create"
	opUpdate     = "clients.update"
	opDelete     = "clients.delete"
)

var (
	errMissingDatabase   = errors.New("database handle is required")
	errMissingIDProvider = errors.New("id provider is required")
	errMissingID         = errors.New("client identifier is required")
	errBlankField        = errors.New("required field is blank")
	errUnknownStatus     = errors.New("unknown status")
	errUnknownType       = errors.New("unknown client type")
	errUnknownClient     = errors.New("client does not exist")
	noOpLogger           = zap.NewNop()
)

// ServiceConfig describes the client directory dependencies.
type ServiceConfig struct {
	Database   *gorm.DB
	Clock      func() time.Time
	IDProvider resource.IDProvider
	Logger     *zap.Logger
}

// Service owns CRUD and filtering for the customer directory.
type Service struct {
	db         *gorm.DB
	clock      func() time.Time
	idProvider resource.IDProvider
	logger     *zap.Logger
}

// NewService validates dependencies and constructs the client service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, resource.NewInternalError(opServiceNew, "missing_database", errMissingDatabase)
	}
	if cfg.IDProvider == nil {
		return nil, resource.NewInternalError(opServiceNew, "missing_id_provider", errMissingIDProvider)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, clock: clock, idProvider: cfg.IDProvider, logger: logger}, nil
}

// List returns clients matching the predicates in insertion order plus
// statistics over the full unfiltered directory.
func (s *Service) List(ctx context.Context, predicates resource.Predicates) ([]Client, Stats, error) {
	var records []Client
	if err := s.db.WithContext(ctx).
		Order("created_at_s ASC, id ASC").
		Find(&records).Error; err != nil {
		s.logError(opList, "query_failed", err)
		return nil, Stats{}, resource.NewInternalError(opList, "query_failed", err)
	}

	stats := computeStats(records)
	filtered := resource.Filter(records, predicates, clientField)
	return filtered, stats, nil
}

// Get returns one client by id.
func (s *Service) Get(ctx context.Context, id string) (Client, error) {
	return s.get(ctx, opGet, id)
}

// Create validates required fields, fills defaults, and stores the client.
func (s *Service) Create(ctx context.Context, input Client) (Client, error) {
	for field, value := range map[string]string{
		"name":  input.Name,
		"type":  input.Type,
		"email": input.Email,
		"phone": input.Phone,
	} {
		if strings.TrimSpace(value) == "" {
			return Client{}, resource.NewValidationError(opCreate, "missing_field", fmt.Errorf("%w: %s", errBlankField, field))
		}
	}
	if !contains(Types, input.Type) {
		return Client{}, resource.NewValidationError(opCreate, "invalid_type", fmt.Errorf("%w: %q", errUnknownType, input.Type))
	}

	if input.Status == "" {
		input.Status = StatusPotential
	}
	if !contains(Statuses, input.Status) {
		return Client{}, resource.NewValidationError(opCreate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, input.Status))
	}
	if input.Country == "" {
		input.Country = DefaultCountry
	}

	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(opCreate, "id_generation_failed", err)
		return Client{}, resource.NewInternalError(opCreate, "id_generation_failed", err)
	}
	input.ID = id

	now := s.clock().UTC().Unix()
	input.CreatedAtSeconds = now
	input.UpdatedAtSeconds = now
	if input.Tags == nil {
		input.Tags = []string{}
	}

	if err := s.db.WithContext(ctx).Create(&input).Error; err != nil {
		s.logError(opCreate, "insert_failed", err, zap.String("client_id", input.ID))
		return Client{}, resource.NewInternalError(opCreate, "insert_failed", err)
	}
	return input, nil
}

// Update merges the provided fields onto the stored client.
func (s *Service) Update(ctx context.Context, id string, update Update) (Client, error) {
	existing, err := s.get(ctx, opUpdate, id)
	if err != nil {
		return Client{}, err
	}

	required := func(target *string, value *string, field string) error {
		if value == nil {
			return nil
		}
		if strings.TrimSpace(*value) == "" {
			return resource.NewValidationError(opUpdate, "missing_field", fmt.Errorf("%w: %s", errBlankField, field))
		}
		*target = *value
		return nil
	}

	if err := required(&existing.Name, update.Name, "name"); err != nil {
		return Client{}, err
	}
	if err := required(&existing.Email, update.Email, "email"); err != nil {
		return Client{}, err
	}
	if err := required(&existing.Phone, update.Phone, "phone"); err != nil {
		return Client{}, err
	}
	if update.Type != nil {
		if !contains(Types, *update.Type) {
			return Client{}, resource.NewValidationError(opUpdate, "invalid_type", fmt.Errorf("%w: %q", errUnknownType, *update.Type))
		}
		existing.Type = *update.Type
	}
	if update.Status != nil {
		if !contains(Statuses, *update.Status) {
			return Client{}, resource.NewValidationError(opUpdate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, *update.Status))
		}
		existing.Status = *update.Status
	}
	if update.Country != nil {
		existing.Country = *update.Country
	}
	if update.City != nil {
		existing.City = *update.City
	}
	if update.ContactPerson != nil {
		existing.ContactPerson = *update.ContactPerson
	}
	if update.Notes != nil {
		existing.Notes = *update.Notes
	}
	if update.Tags != nil {
		existing.Tags = *update.Tags
	}

	existing.UpdatedAtSeconds = s.clock().UTC().Unix()

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		s.logError(opUpdate, "save_failed", err, zap.String("client_id", id))
		return Client{}, resource.NewInternalError(opUpdate, "save_failed", err)
	}
	return existing, nil
}

// Delete removes a client and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (Client, error) {
	existing, err := s.get(ctx, opDelete, id)
	if err != nil {
		return Client{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&Client{}, "id = ?", id).Error; err != nil {
		s.logError(opDelete, "delete_failed", err, zap.String("client_id", id))
		return Client{}, resource.NewInternalError(opDelete, "delete_failed", err)
	}
	return existing, nil
}

func (s *Service) get(ctx context.Context, operation, id string) (Client, error) {
	if strings.TrimSpace(id) == "" {
		return Client{}, resource.NewValidationError(operation, "missing_id", errMissingID)
	}
	var record Client
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Client{}, resource.NewNotFoundError(operation, "unknown_id", fmt.Errorf("%w: %q", errUnknownClient, id))
	}
	if err != nil {
		s.logError(operation, "query_failed", err, zap.String("client_id", id))
		return Client{}, resource.NewInternalError(operation, "query_failed", err)
	}
	return record, nil
}

func computeStats(records []Client) Stats {
	byStatus := resource.CountBy(records, func(record Client) string {
		return record.Status
	})
	for _, status := range Statuses {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}
	byType := resource.CountBy(records, func(record Client) string {
		return record.Type
	})
	for _, clientType := range Types {
		if _, ok := byType[clientType]; !ok {
			byType[clientType] = 0
		}
	}
	return Stats{Total: len(records), ByStatus: byStatus, ByType: byType}
}

func (s *Service) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	s.logger.Error("clients service error", attrs...)
}

// clientField resolves filterable fields. City is optional on a record: a
// client without one is excluded whenever a city predicate is active.
func clientField(record Client, field string) (string, bool) {
	switch field {
	case "status":
		return record.Status, true
	case "type":
		return record.Type, true
	case "city":
		if record.City == "" {
			return "", false
		}
		return record.City, true
	default:
		return "", false
	}
}
