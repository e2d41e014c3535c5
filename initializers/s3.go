package initializers

import (
	"context"
	filestorage "tracker-backend/lib/file-storage"
	s3client "tracker-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	err := s3client.Connect()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = s3client.Client.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	filestorage.NewInstance(s3client.Client)
	log.Info("S3 клиент успешно инициализирован")
}
