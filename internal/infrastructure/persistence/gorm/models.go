// Package gorm provides GORM model definitions and repository
// implementations backing the outbound persistence ports
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealModel represents the GORM model for catalog entries
type MealModel struct {
	ID              uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Title           string      `gorm:"type:varchar(200);not null;index"`
	Description     string      `gorm:"type:text"`
	Category        string      `gorm:"type:varchar(20);not null;index"`
	PrepTimeMinutes int         `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int         `gorm:"column:cook_time_minutes;default:0"`
	ServingSize     int         `gorm:"default:1"`
	Instructions    StringSlice `gorm:"type:json"`
	ImageURL        string      `gorm:"type:text"`
	CreatedAt       time.Time   `gorm:"index"`
	UpdatedAt       time.Time
}

// MealPlanModel represents the GORM model for calendar entries. MealID
// carries no foreign key constraint: a plan keeps its reference after
// the meal is deleted.
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	MealID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Date      time.Time `gorm:"not null;index"`
	MealType  string    `gorm:"type:varchar(20);not null"`
	TimeOfDay string    `gorm:"type:varchar(5)"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// IngredientModel represents the GORM model for pantry items
type IngredientModel struct {
	ID               uuid.UUID      `gorm:"type:char(36);primaryKey"`
	Name             string         `gorm:"type:varchar(200);not null;index"`
	Type             string         `gorm:"type:varchar(20);not null;index"`
	ImageURL         string         `gorm:"type:text"`
	Nutrients        NutrientsModel `gorm:"embedded;embeddedPrefix:nutrient_"`
	CurrentAmount    float64        `gorm:"default:0"`
	ServingSize      float64        `gorm:"default:0"`
	Unit             string         `gorm:"type:varchar(20);not null"`
	OtherUnit        string         `gorm:"type:varchar(50)"`
	Products         ProductSlice   `gorm:"type:json"`
	DefaultProductID *uuid.UUID     `gorm:"type:char(36)"`
	CreatedAt        time.Time      `gorm:"index"`
	UpdatedAt        time.Time
}

// NutrientsModel represents the embedded per-100g nutrient profile
type NutrientsModel struct {
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
	Sugar    float64 `gorm:"default:0"`
	Sodium   float64 `gorm:"default:0"`
	Calories float64 `gorm:"default:0"`
}

// ProductRecord is the JSON shape of one retail product
type ProductRecord struct {
	ID       uuid.UUID `json:"id"`
	Retailer string    `json:"retailer"`
	Label    string    `json:"label"`
	Cost     float64   `json:"cost"`
	Servings float64   `json:"servings"`
	URL      string    `json:"url"`
}

// ConversationModel represents the GORM model for chat conversations.
// The transcript is stored as a JSON document; messages are append-only
// and always loaded together with the conversation.
type ConversationModel struct {
	ID          uuid.UUID    `gorm:"type:char(36);primaryKey"`
	Title       string       `gorm:"type:varchar(255);not null"`
	Pinned      bool         `gorm:"default:false;index"`
	Messages    MessageSlice `gorm:"type:json"`
	LastUpdated time.Time    `gorm:"index"`
	CreatedAt   time.Time    `gorm:"index"`
}

// MessageRecord is the JSON shape of one transcript entry
type MessageRecord struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// UserModel represents the GORM model for accounts
type UserModel struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	Provider      string    `gorm:"type:varchar(20);not null"`
	EmailVerified bool      `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLoginAt   *time.Time
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// ProductSlice custom type for handling product lists in JSON
type ProductSlice []ProductRecord

// Scan implements the sql.Scanner interface
func (p *ProductSlice) Scan(value interface{}) error {
	if value == nil {
		*p = ProductSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into ProductSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (p ProductSlice) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "[]", nil
	}
	return json.Marshal(p)
}

// MessageSlice custom type for handling transcripts in JSON
type MessageSlice []MessageRecord

// Scan implements the sql.Scanner interface
func (m *MessageSlice) Scan(value interface{}) error {
	if value == nil {
		*m = MessageSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into MessageSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (m MessageSlice) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	return json.Marshal(m)
}

// BeforeCreate hook for MealModel
func (m *MealModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ConversationModel
func (c *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (MealModel) TableName() string {
	return "meals"
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (ConversationModel) TableName() string {
	return "conversations"
}

func (UserModel) TableName() string {
	return "users"
}
