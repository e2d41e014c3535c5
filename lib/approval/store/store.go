package approvalstore

import (
	"tracker-backend/models"
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	UserID string
	Role   models.ApprovalListRole
	Status models.ApprovalStatus
	Page   int
	Limit  int
}

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.ApprovalRequest, err error)
	GetByIDForUpdate(spaceID, id string) (rec *dbmodels.ApprovalRequest, err error)
	Save(rec *dbmodels.ApprovalRequest) error
	List(spaceID string, filter ListFilter) (list []dbmodels.ApprovalRequest, err error)
	ListCount(spaceID string, filter ListFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Omit("RequestedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("RequestedBy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции,
// чтобы параллельные решения по одной заявке не теряли друг друга
func (i impl) GetByIDForUpdate(spaceID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Save(rec *dbmodels.ApprovalRequest) error {
	err := i.db.
		Omit("RequestedBy").
		Save(rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) listQuery(spaceID string, filter ListFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("space_id = ?", spaceID).
		Where("deleted_at IS NULL")
	switch filter.Role {
	case models.AListRoleApprover:
		tx = tx.Where("approver_ids @> to_jsonb(?::text)", filter.UserID)
	case models.AListRoleRequester:
		tx = tx.Where("requested_by_id = ?", filter.UserID)
	default:
		tx = tx.Where("requested_by_id = ? OR approver_ids @> to_jsonb(?::text)", filter.UserID, filter.UserID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) List(spaceID string, filter ListFilter) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	offset := (filter.Page - 1) * filter.Limit
	err = i.listQuery(spaceID, filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Preload("RequestedBy").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(spaceID string, filter ListFilter) (count int64, err error) {
	err = i.listQuery(spaceID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
