package db_models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DeadPersonProfile is the memorial page aggregate root. Every owned sub-entity
// mutation must pass the owner-email check before touching rows.
type DeadPersonProfile struct {
	BaseModel
	OwnerEmail string `gorm:"index"`
	Slug       string `gorm:"uniqueIndex"` // public shareable identifier

	FirstName     string
	LastName      string
	BornDate      *time.Time
	DeathDate     *time.Time
	MemorialPlace string

	ProfileImageURL    string
	BackgroundImageURL string
	IsPaid             bool `gorm:"default:false"`

	Biography   *Biography      `gorm:"foreignKey:ProfileID"`
	Gallery     []Gallery       `gorm:"foreignKey:ProfileID"`
	Family      []Family        `gorm:"foreignKey:ProfileID"`
	Events      []Event         `gorm:"foreignKey:ProfileID"`
	SocialLinks []SocialLink    `gorm:"foreignKey:ProfileID"`
	GuestBook   []GuestBookItem `gorm:"foreignKey:ProfileID"`
}

type Biography struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"uniqueIndex"`
	Content   string    `gorm:"type:text"`
}

type Gallery struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"index"`
	ImageURL  string
	Caption   string
}

// RelationKind is the closed set of family relations. Unknown strings are
// rejected at the boundary instead of dispatched dynamically.
type RelationKind string

const (
	RelationParent      RelationKind = "parent"
	RelationSibling     RelationKind = "sibling"
	RelationSpouse      RelationKind = "spouse"
	RelationChild       RelationKind = "child"
	RelationGrandparent RelationKind = "grandparent"
	RelationGrandchild  RelationKind = "grandchild"
	RelationFriend      RelationKind = "friend"
	RelationOther       RelationKind = "other"
)

func ParseRelationKind(s string) (RelationKind, error) {
	switch RelationKind(s) {
	case RelationParent, RelationSibling, RelationSpouse, RelationChild,
		RelationGrandparent, RelationGrandchild, RelationFriend, RelationOther:
		return RelationKind(s), nil
	}
	return "", fmt.Errorf("unknown relation kind %q", s)
}

type Family struct {
	BaseModel
	ProfileID uuid.UUID    `gorm:"index"`
	Relation  RelationKind `gorm:"type:varchar(16);index"`
	FullName  string
	PhotoURL  string
	LinkSlug  string // slug of a linked memorial profile, when one exists
}

type Event struct {
	BaseModel
	ProfileID   uuid.UUID `gorm:"index"`
	Title       string
	Description string         `gorm:"type:text"`
	EventDate   time.Time      `gorm:"type:date"`
	Images      pq.StringArray `gorm:"type:text[]"`
}

type SocialLink struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"index"`
	Platform  string
	URL       string
}

// GuestBookItem starts unapproved and is excluded from the public listing
// until the profile owner approves it.
type GuestBookItem struct {
	BaseModel
	ProfileID  uuid.UUID `gorm:"index"`
	Name       string
	Contact    string
	Message    string `gorm:"type:text"`
	PhotoURL   string
	IsApproved bool `gorm:"default:false;index"`
}

type QrCode struct {
	BaseModel
	Slug     string `gorm:"uniqueIndex"`
	FileName string
	URL      string
}
