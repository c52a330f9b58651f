package pages

// Page status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Statuses lists every recognized page status.
var Statuses = []string{StatusDraft, StatusPublished}

// Block kinds understood by the site renderer.
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockImage     = "image"
)

// Block is one content unit of a page body.
type Block struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Page is an editable site page: an URL path, SEO metadata, and an ordered
// sequence of content blocks persisted as JSON.
type Page struct {
	ID               string  `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Title            string  `gorm:"column:title;size:320;not null" json:"title"`
	Path             string  `gorm:"column:path;size:320;not null" json:"path"`
	Status           string  `gorm:"column:status;size:32;not null" json:"status"`
	MetaTitle        string  `gorm:"column:meta_title;size:320" json:"metaTitle"`
	MetaDescription  string  `gorm:"column:meta_description;type:text" json:"metaDescription"`
	Blocks           []Block `gorm:"column:blocks;type:text;serializer:json" json:"blocks"`
	CreatedAtSeconds int64   `gorm:"column:created_at_s;not null" json:"created_at_s"`
	UpdatedAtSeconds int64   `gorm:"column:updated_at_s;not null" json:"updated_at_s"`
}

// TableName provides the explicit table binding for GORM.
func (Page) TableName() string {
	return "site_pages"
}

// Update carries a partial page edit; nil fields are preserved, present
// fields fully replace, blocks included.
type Update struct {
	Title           *string  `json:"title"`
	Path            *string  `json:"path"`
	Status          *string  `json:"status"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	Blocks          *[]Block `json:"blocks"`
}

// Stats summarizes the full page store.
type Stats struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Published int `json:"published"`
}

func validStatus(status string) bool {
	for _, known := range Statuses {
		if status == known {
			return true
		}
	}
	return false
}
