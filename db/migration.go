package db

import (
	dbmodels "tracker-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Space")
	}
	if err := DB.AutoMigrate(&dbmodels.SpaceUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SpaceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Store{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Store")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Project")
	}
	if err := DB.AutoMigrate(&dbmodels.Milestone{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Milestone")
	}
	if err := DB.AutoMigrate(&dbmodels.Blocker{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Blocker")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Task")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Comment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Comment")
	}
	if err := DB.AutoMigrate(&dbmodels.Note{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Note")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
