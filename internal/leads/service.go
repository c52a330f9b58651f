package leads

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
	opServiceNew = "leads.service.new"
	opList       = "leads.list"
	opGet        = "leads.get"
	opCreate     = "leads.create"
	opUpdate     = "leads.update"
	opDelete     = "leads.delete"
)

var (
	errMissingDatabase   = errors.New("database handle is required")
	errMissingIDProvider = errors.New("id provider is required")
	errMissingID         = errors.New("lead identifier is required")
	errBlankField        = errors.New("required field is blank")
	errUnknownStatus     = errors.New("unknown status")
	errUnknownLead       = errors.New("lead does not exist")
	noOpLogger           = zap.NewNop()
)

// ServiceConfig describes the lead service dependencies.
type ServiceConfig struct {
	Database   *gorm.DB
	Clock      func() time.Time
	IDProvider resource.IDProvider
	Logger     *zap.Logger
}

// Service owns CRUD and filtering for sales enquiries.
type Service struct {
	db         *gorm.DB
	clock      func() time.Time
	idProvider resource.IDProvider
	logger     *zap.Logger
}

// NewService validates dependencies and constructs the lead service.
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

// List returns leads matching the predicates in insertion order plus
// statistics over the full unfiltered store.
func (s *Service) List(ctx context.Context, predicates resource.Predicates) ([]Lead, Stats, error) {
	var records []Lead
	if err := s.db.WithContext(ctx).
		Order("created_at_s ASC, id ASC").
		Find(&records).Error; err != nil {
		s.logError(opList, "query_failed", err)
		return nil, Stats{}, resource.NewInternalError(opList, "query_failed", err)
	}

	stats := computeStats(records)
	filtered := resource.Filter(records, predicates, leadField)
	return filtered, stats, nil
}

// Get returns one lead by id.
func (s *Service) Get(ctx context.Context, id string) (Lead, error) {
	return s.get(ctx, opGet, id)
}

// Create validates required fields, fills defaults, and stores the enquiry.
func (s *Service) Create(ctx context.Context, input Lead) (Lead, error) {
	for field, value := range map[string]string{
		"name":    input.Name,
		"email":   input.Email,
		"phone":   input.Phone,
		"message": input.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return Lead{}, resource.NewValidationError(opCreate, "missing_field", fmt.Errorf("%w: %s", errBlankField, field))
		}
	}

	if input.Source == "" {
		input.Source = DefaultSource
	}
	if input.Status == "" {
		input.Status = StatusNew
	}
	if !validStatus(input.Status) {
		return Lead{}, resource.NewValidationError(opCreate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, input.Status))
	}

	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(opCreate, "id_generation_failed", err)
		return Lead{}, resource.NewInternalError(opCreate, "id_generation_failed", err)
	}
	input.ID = id

	now := s.clock().UTC().Unix()
	input.CreatedAtSeconds = now
	input.UpdatedAtSeconds = now
	if input.Tags == nil {
		input.Tags = []string{}
	}

	if err := s.db.WithContext(ctx).Create(&input).Error; err != nil {
		s.logError(opCreate, "insert_failed", err, zap.String("lead_id", input.ID))
		return Lead{}, resource.NewInternalError(opCreate, "insert_failed", err)
	}
	return input, nil
}

// Update merges the provided fields onto the stored lead. Absent fields are
// preserved; present fields fully replace, so callers editing tags must send
// the complete list.
func (s *Service) Update(ctx context.Context, id string, update Update) (Lead, error) {
	existing, err := s.get(ctx, opUpdate, id)
	if err != nil {
		return Lead{}, err
	}

	applyString := func(target *string, value *string, field string) error {
		if value == nil {
			return nil
		}
		if strings.TrimSpace(*value) == "" {
			return resource.NewValidationError(opUpdate, "missing_field", fmt.Errorf("%w: %s", errBlankField, field))
		}
		*target = *value
		return nil
	}

	if err := applyString(&existing.Name, update.Name, "name"); err != nil {
		return Lead{}, err
	}
	if err := applyString(&existing.Email, update.Email, "email"); err != nil {
		return Lead{}, err
	}
	if err := applyString(&existing.Phone, update.Phone, "phone"); err != nil {
		return Lead{}, err
	}
	if err := applyString(&existing.Message, update.Message, "message"); err != nil {
		return Lead{}, err
	}
	if update.Source != nil {
		existing.Source = *update.Source
	}
	if update.Status != nil {
		if !validStatus(*update.Status) {
			return Lead{}, resource.NewValidationError(opUpdate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, *update.Status))
		}
		existing.Status = *update.Status
	}
	if update.ModelID != nil {
		existing.ModelID = *update.ModelID
	}
	if update.Tags != nil {
		existing.Tags = *update.Tags
	}

	existing.UpdatedAtSeconds = s.clock().UTC().Unix()

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		s.logError(opUpdate, "save_failed", err, zap.String("lead_id", id))
		return Lead{}, resource.NewInternalError(opUpdate, "save_failed", err)
	}
	return existing, nil
}

// Delete removes a lead and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (Lead, error) {
	existing, err := s.get(ctx, opDelete, id)
	if err != nil {
		return Lead{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&Lead{}, "id = ?", id).Error; err != nil {
		s.logError(opDelete, "delete_failed", err, zap.String("lead_id", id))
		return Lead{}, resource.NewInternalError(opDelete, "delete_failed", err)
	}
	return existing, nil
}

func (s *Service) get(ctx context.Context, operation, id string) (Lead, error) {
	if strings.TrimSpace(id) == "" {
		return Lead{}, resource.NewValidationError(operation, "missing_id", errMissingID)
	}
	var record Lead
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Lead{}, resource.NewNotFoundError(operation, "unknown_id", fmt.Errorf("%w: %q", errUnknownLead, id))
	}
	if err != nil {
		s.logError(operation, "query_failed", err, zap.String("lead_id", id))
		return Lead{}, resource.NewInternalError(operation, "query_failed", err)
	}
	return record, nil
}

func computeStats(records []Lead) Stats {
	byStatus := resource.CountBy(records, func(record Lead) string {
		return record.Status
	})
	return Stats{
		Total:      len(records),
		New:        byStatus[StatusNew],
		InProgress: byStatus[StatusInProgress],
		Completed:  byStatus[StatusCompleted],
		Rejected:   byStatus[StatusRejected],
	}
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
	s.logger.Error("leads service error", attrs...)
}

func leadField(record Lead, field string) (string, bool) {
	switch field {
	case "status":
		return record.Status, true
	case "source":
		return record.Source, true
	default:
		return "", false
	}
}
