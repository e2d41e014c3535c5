package storesapimodels

import (
	"strings"
	"time"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
)

type StoreData struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	ManagerID string `json:"manager_id"`
}

func (r StoreData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название магазина")
	}
	return nil
}

type StoreView struct {
	StoreData
	ID          string    `json:"id"`
	ManagerName string    `json:"manager_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func StoreConvert(rec dbmodels.Store) StoreView {
	managerID := ""
	if rec.ManagerID != nil {
		managerID = *rec.ManagerID
	}
	managerName := ""
	if rec.Manager != nil {
		managerName = rec.Manager.GetFullName()
	}
	return StoreView{
		StoreData: StoreData{
			Name:      rec.Name,
			Location:  rec.Location,
			ManagerID: managerID,
		},
		ID:          rec.ID,
		ManagerName: managerName,
		CreatedAt:   rec.CreatedAt,
	}
}
