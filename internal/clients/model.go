package clients

// Client status values.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPotential = "potential"
)

// Client type values: the kind of organization buying or renting equipment.
const (
	TypeConstruction = "construction"
	TypeRental       = "rental"
	TypeGovernment   = "government"
	TypeIndividual   = "individual"
)

var (
	// Statuses lists every recognized client status.
	Statuses = []string{StatusActive, StatusInactive, StatusPotential}
	// Types lists every recognized client type.
	Types = []string{TypeConstruction, TypeRental, TypeGovernment, TypeIndividual}
)

// DefaultCountry is assumed when an operator leaves the country blank.
const DefaultCountry = "Россия"

// Client is one customer in the back-office directory.
type Client struct {
	ID               string   `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Name             string   `gorm:"column:name;size:320;not null" json:"name"`
	Type             string   `gorm:"column:type;size:32;not null" json:"type"`
	Email            string   `gorm:"column:email;size:320;not null" json:"email"`
	Phone            string   `gorm:"column:phone;size:64;not null" json:"phone"`
	Status           string   `gorm:"column:status;size:32;not null" json:"status"`
	Country          string   `gorm:"column:country;size:190;not null" json:"country"`
	City             string   `gorm:"column:city;size:190" json:"city"`
	ContactPerson    string   `gorm:"column:contact_person;size:320" json:"contactPerson"`
	Notes            string   `gorm:"column:notes;type:text" json:"notes"`
	Tags             []string `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	CreatedAtSeconds int64    `gorm:"column:created_at_s;not null" json:"created_at_s"`
	UpdatedAtSeconds int64    `gorm:"column:updated_at_s;not null" json:"updated_at_s"`
}

// TableName provides the explicit table binding for GORM.
func (Client) TableName() string {
	return "clients"
}

// Update carries a partial client edit; nil fields are preserved, present
// fields fully replace the stored value.
type Update struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Status        *string   `json:"status"`
	Country       *string   `json:"country"`
	City          *string   `json:"city"`
	ContactPerson *string   `json:"contactPerson"`
	Notes         *string   `json:"notes"`
	Tags          *[]string `json:"tags"`
}

// Stats summarizes the full client directory: one counter per status value
// and, separately, one per client type.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`
}

func contains(known []string, value string) bool {
	for _, candidate := range known {
		if candidate == value {
			return true
		}
	}
	return false
}
