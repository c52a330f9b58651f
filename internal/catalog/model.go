package catalog

// Category enumerates the pump-truck classes the catalog sells.
const (
	CategoryTruckMounted = "truck-mounted"
	CategoryStationary   = "stationary"
	CategoryTrailer      = "trailer"
)

// Categories lists every recognized category in display order.
var Categories = []string{CategoryTruckMounted, CategoryStationary, CategoryTrailer}

// BrandToken is stripped from titles when deriving catalog identifiers, so
// "KCP 32RX-170" and "32RX-170" land on the same slug.
const BrandToken = "kcp"

// SpecEntry is one row of a specification table.
type SpecEntry struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight"`
}

// Specifications groups the four fixed tables the editing UI renders. All
// four groups are always present, possibly with empty-valued entries.
type Specifications struct {
	General []SpecEntry `json:"general"`
	Boom    []SpecEntry `json:"boom"`
	Pump    []SpecEntry `json:"pump"`
	Chassis []SpecEntry `json:"chassis"`
}

// KeySpecs carries the headline figures shown on catalog cards.
type KeySpecs struct {
	BoomHeight string `json:"height"`
	Output     string `json:"output"`
	Reach      string `json:"reach"`
	Chassis    string `json:"chassis"`
}

// Delivery describes the commercial terms block of a model page.
type Delivery struct {
	Terms    string `json:"terms"`
	Time     string `json:"time"`
	Payment  string `json:"payment"`
	Warranty string `json:"warranty"`
}

// Model is a catalog entry for one pump-truck model. The nested blocks
// persist as JSON text columns.
type Model struct {
	ID               string         `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Title            string         `gorm:"column:title;size:320;not null" json:"title"`
	Category         string         `gorm:"column:category;size:64;not null" json:"category"`
	ShortDescription string         `gorm:"column:short_description;type:text" json:"shortDescription"`
	Price            string         `gorm:"column:price;size:190" json:"price"`
	KeySpecs         KeySpecs       `gorm:"column:key_specs;type:text;serializer:json" json:"keySpecs"`
	Specifications   Specifications `gorm:"column:specifications;type:text;serializer:json" json:"specifications"`
	Features         []string       `gorm:"column:features;type:text;serializer:json" json:"features"`
	Advantages       []string       `gorm:"column:advantages;type:text;serializer:json" json:"advantages"`
	Delivery         Delivery       `gorm:"column:delivery;type:text;serializer:json" json:"delivery"`
	Tags             []string       `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	CreatedAtSeconds int64          `gorm:"column:created_at_s;not null" json:"created_at_s"`
	UpdatedAtSeconds int64          `gorm:"column:updated_at_s;not null" json:"updated_at_s"`
}

// TableName provides the explicit table binding for GORM.
func (Model) TableName() string {
	return "catalog_models"
}

// Stats summarizes the full catalog regardless of the active filter.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

func validCategory(category string) bool {
	for _, known := range Categories {
		if category == known {
			return true
		}
	}
	return false
}

// normalize guarantees the fixed-shape invariants: the four specification
// groups and every list field are non-nil so the admin tables always render.
func (m *Model) normalize() {
	if m.Specifications.General == nil {
		m.Specifications.General = []SpecEntry{}
	}
	if m.Specifications.Boom == nil {
		m.Specifications.Boom = []SpecEntry{}
	}
	if m.Specifications.Pump == nil {
		m.Specifications.Pump = []SpecEntry{}
	}
	if m.Specifications.Chassis == nil {
		m.Specifications.Chassis = []SpecEntry{}
	}
	if m.Features == nil {
		m.Features = []string{}
	}
	if m.Advantages == nil {
		m.Advantages = []string{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
}
