package pages

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
	opServiceNew = "pages.service.new"
	opList       = "pages.list"
	opGet        = "pages.get"
	opCreate     = "pages.create"
	opUpdate     = "pages.update"
	opDelete     = "pages.delete"
)

var (
	errMissingDatabase = errors.New("database handle is required")
	errMissingID       = errors.New("page identifier is required")
	errBlankTitle      = errors.New("title is required")
	errUnknownStatus   = errors.New("unknown status")
	errUnknownPage     = errors.New("page does not exist")
	errIDTaken         = errors.New("page id already exists")
	errEmptySlug       = errors.New("title produced an empty id")
	noOpLogger         = zap.NewNop()
)

// ServiceConfig describes the page service dependencies.
type ServiceConfig struct {
	Database *gorm.DB
	Clock    func() time.Time
	Logger   *zap.Logger
}

// Service owns CRUD and filtering for site pages.
type Service struct {
	db     *gorm.DB
	clock  func() time.Time
	logger *zap.Logger
}

// NewService validates dependencies and constructs the page service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, resource.NewInternalError(opServiceNew, "missing_database", errMissingDatabase)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, clock: clock, logger: logger}, nil
}

// List returns pages matching the predicates in insertion order plus
// statistics over the full store.
func (s *Service) List(ctx context.Context, predicates resource.Predicates) ([]Page, Stats, error) {
	var records []Page
	if err := s.db.WithContext(ctx).
		Order("created_at_s ASC, id ASC").
		Find(&records).Error; err != nil {
		s.logError(opList, "query_failed", err)
		return nil, Stats{}, resource.NewInternalError(opList, "query_failed", err)
	}

	byStatus := resource.CountBy(records, func(record Page) string {
		return record.Status
	})
	stats := Stats{
		Total:     len(records),
		Draft:     byStatus[StatusDraft],
		Published: byStatus[StatusPublished],
	}
	filtered := resource.Filter(records, predicates, pageField)
	return filtered, stats, nil
}

// Get returns one page by id.
func (s *Service) Get(ctx context.Context, id string) (Page, error) {
	return s.get(ctx, opGet, id)
}

// Create validates the payload, derives a slug id from the title when the
// caller supplied none, and stores the page.
func (s *Service) Create(ctx context.Context, input Page) (Page, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Page{}, resource.NewValidationError(opCreate, "missing_title", errBlankTitle)
	}
	if input.Status == "" {
		input.Status = StatusDraft
	}
	if !validStatus(input.Status) {
		return Page{}, resource.NewValidationError(opCreate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, input.Status))
	}

	if input.ID != "" {
		taken, err := s.idTaken(ctx, opCreate, input.ID)
		if err != nil {
			return Page{}, err
		}
		if taken {
			return Page{}, resource.NewConflictError(opCreate, "id_taken", fmt.Errorf("%w: %q", errIDTaken, input.ID))
		}
	} else {
		base := resource.Slugify(input.Title)
		if base == "" {
			return Page{}, resource.NewValidationError(opCreate, "empty_slug", fmt.Errorf("%w: %q", errEmptySlug, input.Title))
		}
		slug, err := resource.UniqueSlug(base, func(candidate string) (bool, error) {
			return s.idTaken(ctx, opCreate, candidate)
		})
		if err != nil {
			return Page{}, err
		}
		input.ID = slug
	}

	if input.Path == "" {
		input.Path = "/" + input.ID
	}
	if input.Blocks == nil {
		input.Blocks = []Block{}
	}

	now := s.clock().UTC().Unix()
	input.CreatedAtSeconds = now
	input.UpdatedAtSeconds = now

	if err := s.db.WithContext(ctx).Create(&input).Error; err != nil {
		s.logError(opCreate, "insert_failed", err, zap.String("page_id", input.ID))
		return Page{}, resource.NewInternalError(opCreate, "insert_failed", err)
	}
	return input, nil
}

// Update merges the provided fields onto the stored page.
func (s *Service) Update(ctx context.Context, id string, update Update) (Page, error) {
	existing, err := s.get(ctx, opUpdate, id)
	if err != nil {
		return Page{}, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return Page{}, resource.NewValidationError(opUpdate, "missing_title", errBlankTitle)
		}
		existing.Title = *update.Title
	}
	if update.Path != nil {
		existing.Path = *update.Path
	}
	if update.Status != nil {
		if !validStatus(*update.Status) {
			return Page{}, resource.NewValidationError(opUpdate, "invalid_status", fmt.Errorf("%w: %q", errUnknownStatus, *update.Status))
		}
		existing.Status = *update.Status
	}
	if update.MetaTitle != nil {
		existing.MetaTitle = *update.MetaTitle
	}
	if update.MetaDescription != nil {
		existing.MetaDescription = *update.MetaDescription
	}
	if update.Blocks != nil {
		existing.Blocks = *update.Blocks
	}

	existing.UpdatedAtSeconds = s.clock().UTC().Unix()

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		s.logError(opUpdate, "save_failed", err, zap.String("page_id", id))
		return Page{}, resource.NewInternalError(opUpdate, "save_failed", err)
	}
	return existing, nil
}

// Delete removes a page and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (Page, error) {
	existing, err := s.get(ctx, opDelete, id)
	if err != nil {
		return Page{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&Page{}, "id = ?", id).Error; err != nil {
		s.logError(opDelete, "delete_failed", err, zap.String("page_id", id))
		return Page{}, resource.NewInternalError(opDelete, "delete_failed", err)
	}
	return existing, nil
}

func (s *Service) get(ctx context.Context, operation, id string) (Page, error) {
	if strings.TrimSpace(id) == "" {
		return Page{}, resource.NewValidationError(operation, "missing_id", errMissingID)
	}
	var record Page
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Page{}, resource.NewNotFoundError(operation, "unknown_id", fmt.Errorf("%w: %q", errUnknownPage, id))
	}
	if err != nil {
		s.logError(operation, "query_failed", err, zap.String("page_id", id))
		return Page{}, resource.NewInternalError(operation, "query_failed", err)
	}
	return record, nil
}

func (s *Service) idTaken(ctx context.Context, operation, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Page{}).Where("id = ?", id).Count(&count).Error; err != nil {
		s.logError(operation, "query_failed", err, zap.String("page_id", id))
		return false, resource.NewInternalError(operation, "query_failed", err)
	}
	return count > 0, nil
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
	s.logger.Error("pages service error", attrs...)
}

func pageField(record Page, field string) (string, bool) {
	switch field {
	case "status":
		return record.Status, true
	default:
		return "", false
	}
}
