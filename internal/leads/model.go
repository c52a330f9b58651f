package leads

// Lead status lifecycle: every enquiry starts new and is worked by a manager
// until completed or rejected.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// Statuses lists every recognized lead status in lifecycle order.
var Statuses = []string{StatusNew, StatusInProgress, StatusCompleted, StatusRejected}

// DefaultSource marks enquiries submitted through the site's contact forms.
const DefaultSource = "website"

// Lead is a sales enquiry captured from the site or entered by a manager.
type Lead struct {
	ID               string   `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Name             string   `gorm:"column:name;size:320;not null" json:"name"`
	Email            string   `gorm:"column:email;size:320;not null" json:"email"`
	Phone            string   `gorm:"column:phone;size:64;not null" json:"phone"`
	Message          string   `gorm:"column:message;type:text;not null" json:"message"`
	Source           string   `gorm:"column:source;size:190;not null" json:"source"`
	Status           string   `gorm:"column:status;size:32;not null" json:"status"`
	ModelID          string   `gorm:"column:model_id;size:190" json:"modelId"`
	Tags             []string `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	CreatedAtSeconds int64    `gorm:"column:created_at_s;not null" json:"created_at_s"`
	UpdatedAtSeconds int64    `gorm:"column:updated_at_s;not null" json:"updated_at_s"`
}

// TableName provides the explicit table binding for GORM.
func (Lead) TableName() string {
	return "leads"
}

// Update carries a partial lead edit. Nil fields are preserved; a present
// field fully replaces the stored value, tags included.
type Update struct {
	Name    *string   `json:"name"`
	Email   *string   `json:"email"`
	Phone   *string   `json:"phone"`
	Message *string   `json:"message"`
	Source  *string   `json:"source"`
	Status  *string   `json:"status"`
	ModelID *string   `json:"modelId"`
	Tags    *[]string `json:"tags"`
}

// Stats summarizes the full lead store regardless of the active filter.
type Stats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Rejected   int `json:"rejected"`
}

func validStatus(status string) bool {
	for _, known := range Statuses {
		if status == known {
			return true
		}
	}
	return false
}
