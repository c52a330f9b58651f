package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stroytechnika/pumpdesk/internal/resource"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	opServiceNew = "catalog.service.new"
	opList       = "catalog.list"
	opGet        = "catalog.get"
	opCreate     = "catalog.create"
	opReplace    = "catalog.replace"
	opDelete     = "catalog.delete"
	opSetField   = "catalog.set_field"
	opAppendItem = "catalog.append_array_item"
	opRemoveItem = "catalog.remove_array_item"
)

var (
	errMissingDatabase = errors.New("database handle is required")
	errMissingID       = errors.New("model identifier is required")
	errBlankTitle      = errors.New("title is required")
	errUnknownCategory = errors.New("unknown category")
	errUnknownModel    = errors.New("model does not exist")
	errIDTaken         = errors.New("model id already exists")
	errEmptySlug       = errors.New("title produced an empty id")
	errProtectedPath   = errors.New("path addresses a protected field")
	noOpLogger         = zap.NewNop()
)

// ServiceConfig describes the catalog service dependencies.
type ServiceConfig struct {
	Database *gorm.DB
	Clock    func() time.Time
	Logger   *zap.Logger
}

// Service owns CRUD, filtering, and draft-field mutation for catalog models.
type Service struct {
	db     *gorm.DB
	clock  func() time.Time
	logger *zap.Logger
}

// NewService validates dependencies and constructs the catalog service.
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

// List returns the filtered catalog in insertion order plus statistics over
// the full unfiltered store.
func (s *Service) List(ctx context.Context, predicates resource.Predicates) ([]Model, Stats, error) {
	records, err := s.listAll(ctx, opList)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := s.stats(records)
	filtered := resource.Filter(records, predicates, modelField)
	return filtered, stats, nil
}

// Get returns one model by id.
func (s *Service) Get(ctx context.Context, id string) (Model, error) {
	return s.get(ctx, opGet, id)
}

// Create validates the payload, derives a slug id when the caller supplied
// none, and stores the record.
func (s *Service) Create(ctx context.Context, input Model) (Model, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Model{}, resource.NewValidationError(opCreate, "missing_title", errBlankTitle)
	}
	if input.Category == "" {
		input.Category = CategoryTruckMounted
	}
	if !validCategory(input.Category) {
		return Model{}, resource.NewValidationError(opCreate, "invalid_category", fmt.Errorf("%w: %q", errUnknownCategory, input.Category))
	}

	if input.ID != "" {
		taken, err := s.idTaken(ctx, opCreate, input.ID)
		if err != nil {
			return Model{}, err
		}
		if taken {
			return Model{}, resource.NewConflictError(opCreate, "id_taken", fmt.Errorf("%w: %q", errIDTaken, input.ID))
		}
	} else {
		base := resource.Slugify(input.Title, BrandToken)
		if base == "" {
			return Model{}, resource.NewValidationError(opCreate, "empty_slug", fmt.Errorf("%w: %q", errEmptySlug, input.Title))
		}
		slug, err := resource.UniqueSlug(base, func(candidate string) (bool, error) {
			return s.idTaken(ctx, opCreate, candidate)
		})
		if err != nil {
			return Model{}, err
		}
		input.ID = slug
	}

	now := s.clock().UTC().Unix()
	input.CreatedAtSeconds = now
	input.UpdatedAtSeconds = now
	input.normalize()

	if err := s.db.WithContext(ctx).Create(&input).Error; err != nil {
		s.logError(opCreate, "insert_failed", err, zap.String("model_id", input.ID))
		return Model{}, resource.NewInternalError(opCreate, "insert_failed", err)
	}
	return input, nil
}

// Replace overwrites an existing model wholesale. Unlike leads and clients,
// catalog updates are full-record PUTs: fields the caller omits are reset,
// so editors must always resend the complete record.
func (s *Service) Replace(ctx context.Context, input Model) (Model, error) {
	if strings.TrimSpace(input.ID) == "" {
		return Model{}, resource.NewValidationError(opReplace, "missing_id", errMissingID)
	}
	if strings.TrimSpace(input.Title) == "" {
		return Model{}, resource.NewValidationError(opReplace, "missing_title", errBlankTitle)
	}
	if input.Category == "" {
		input.Category = CategoryTruckMounted
	}
	if !validCategory(input.Category) {
		return Model{}, resource.NewValidationError(opReplace, "invalid_category", fmt.Errorf("%w: %q", errUnknownCategory, input.Category))
	}

	existing, err := s.get(ctx, opReplace, input.ID)
	if err != nil {
		return Model{}, err
	}

	input.CreatedAtSeconds = existing.CreatedAtSeconds
	input.UpdatedAtSeconds = s.clock().UTC().Unix()
	input.normalize()

	if err := s.db.WithContext(ctx).Save(&input).Error; err != nil {
		s.logError(opReplace, "save_failed", err, zap.String("model_id", input.ID))
		return Model{}, resource.NewInternalError(opReplace, "save_failed", err)
	}
	return input, nil
}

// Delete removes a model and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (Model, error) {
	existing, err := s.get(ctx, opDelete, id)
	if err != nil {
		return Model{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&Model{}, "id = ?", id).Error; err != nil {
		s.logError(opDelete, "delete_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(opDelete, "delete_failed", err)
	}
	return existing, nil
}

// SetField writes value at a dotted path inside the stored record, the
// server-side counterpart of the admin form's draft editing. Paths must
// address existing fields; identifiers and timestamps are off limits.
func (s *Service) SetField(ctx context.Context, id, path string, value any) (Model, error) {
	return s.mutateDocument(ctx, opSetField, id, path, func(document map[string]any) error {
		return resource.SetPath(document, path, value)
	})
}

// AppendArrayItem appends an empty entry to the list at path.
func (s *Service) AppendArrayItem(ctx context.Context, id, path string) (Model, error) {
	return s.mutateDocument(ctx, opAppendItem, id, path, func(document map[string]any) error {
		return resource.AddArrayItem(document, path)
	})
}

// RemoveArrayItem deletes the entry at index from the list at path.
func (s *Service) RemoveArrayItem(ctx context.Context, id, path string, index int) (Model, error) {
	return s.mutateDocument(ctx, opRemoveItem, id, path, func(document map[string]any) error {
		return resource.RemoveArrayItem(document, path, index)
	})
}

func (s *Service) mutateDocument(ctx context.Context, operation, id, path string, mutate func(map[string]any) error) (Model, error) {
	if protectedPath(path) {
		return Model{}, resource.NewValidationError(operation, "protected_path", fmt.Errorf("%w: %q", errProtectedPath, path))
	}

	existing, err := s.get(ctx, operation, id)
	if err != nil {
		return Model{}, err
	}

	encoded, err := json.Marshal(existing)
	if err != nil {
		s.logError(operation, "encode_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(operation, "encode_failed", err)
	}
	document := map[string]any{}
	if err := json.Unmarshal(encoded, &document); err != nil {
		s.logError(operation, "decode_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(operation, "decode_failed", err)
	}

	if err := mutate(document); err != nil {
		return Model{}, err
	}

	mutatedJSON, err := json.Marshal(document)
	if err != nil {
		s.logError(operation, "encode_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(operation, "encode_failed", err)
	}
	var mutated Model
	if err := json.Unmarshal(mutatedJSON, &mutated); err != nil {
		return Model{}, resource.NewValidationError(operation, "invalid_value", err)
	}

	if strings.TrimSpace(mutated.Title) == "" {
		return Model{}, resource.NewValidationError(operation, "missing_title", errBlankTitle)
	}
	if !validCategory(mutated.Category) {
		return Model{}, resource.NewValidationError(operation, "invalid_category", fmt.Errorf("%w: %q", errUnknownCategory, mutated.Category))
	}

	mutated.ID = existing.ID
	mutated.CreatedAtSeconds = existing.CreatedAtSeconds
	mutated.UpdatedAtSeconds = s.clock().UTC().Unix()
	mutated.normalize()

	if err := s.db.WithContext(ctx).Save(&mutated).Error; err != nil {
		s.logError(operation, "save_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(operation, "save_failed", err)
	}
	return mutated, nil
}

func (s *Service) listAll(ctx context.Context, operation string) ([]Model, error) {
	var records []Model
	if err := s.db.WithContext(ctx).
		Order("created_at_s ASC, id ASC").
		Find(&records).Error; err != nil {
		s.logError(operation, "query_failed", err)
		return nil, resource.NewInternalError(operation, "query_failed", err)
	}
	return records, nil
}

func (s *Service) get(ctx context.Context, operation, id string) (Model, error) {
	if strings.TrimSpace(id) == "" {
		return Model{}, resource.NewValidationError(operation, "missing_id", errMissingID)
	}
	var record Model
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Model{}, resource.NewNotFoundError(operation, "unknown_id", fmt.Errorf("%w: %q", errUnknownModel, id))
	}
	if err != nil {
		s.logError(operation, "query_failed", err, zap.String("model_id", id))
		return Model{}, resource.NewInternalError(operation, "query_failed", err)
	}
	return record, nil
}

func (s *Service) idTaken(ctx context.Context, operation, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Model{}).Where("id = ?", id).Count(&count).Error; err != nil {
		s.logError(operation, "query_failed", err, zap.String("model_id", id))
		return false, resource.NewInternalError(operation, "query_failed", err)
	}
	return count > 0, nil
}

func (s *Service) stats(records []Model) Stats {
	byCategory := resource.CountBy(records, func(record Model) string {
		return record.Category
	})
	for _, category := range Categories {
		if _, ok := byCategory[category]; !ok {
			byCategory[category] = 0
		}
	}
	return Stats{Total: len(records), ByCategory: byCategory}
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
	s.logger.Error("catalog service error", attrs...)
}

func modelField(record Model, field string) (string, bool) {
	switch field {
	case "category":
		return record.Category, true
	default:
		return "", false
	}
}

func protectedPath(path string) bool {
	first, _, _ := strings.Cut(path, ".")
	switch first {
	case "id", "created_at_s", "updated_at_s":
		return true
	default:
		return false
	}
}
