package db_models

// Church rows are created standalone by admins or implicitly whenever a booking
// names a church. There is intentionally no dedup on (name, city, state).
type Church struct {
	BaseModel
	Name    string
	Address string
	City    string
	State   string
}

// SubscriptionPlan is immutable reference data consulted by the booking engine.
type SubscriptionPlan struct {
	BaseModel
	Name             string
	Description      *string
	FrequencyPerYear int     `gorm:"default:1"` // 1 or 2 cleanings per year
	Price            float64 // major currency units
	AllowsMultiYear  bool    `gorm:"default:false"`
	IsActive         bool    `gorm:"default:true"`
}

type Flower struct {
	BaseModel
	Name     string
	Price    float64
	InStock  bool `gorm:"default:true"`
	Quantity int  `gorm:"default:0"`
	ImageURL string
}

type Product struct {
	BaseModel
	Name        string
	Description *string
	Price       float64
	InStock     bool `gorm:"default:true"`
	Quantity    int  `gorm:"default:0"`
	ImageURL    string
}

// ServiceOffering is a standalone grave-care service sold outside the
// subscription flow (e.g. one-off headstone restoration).
type ServiceOffering struct {
	BaseModel
	Name        string
	Description *string
	Price       float64
	IsActive    bool `gorm:"default:true"`
}
