package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BaseSpaceModel struct {
	BaseModel
	SpaceID string `gorm:"type:varchar(36);index:idx_space"`
}

func (b BaseSpaceModel) Validate() error {
	if b.SpaceID == "" {
		return errors.New("отсутствует идентификатор организации")
	}
	return nil
}

// StringSlice - jsonb список строк
type StringSlice []string

func (j StringSlice) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StringSlice) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

func (j StringSlice) Contains(v string) bool {
	for _, item := range j {
		if item == v {
			return true
		}
	}
	return false
}
