package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"tracker-backend/config"

	"github.com/minio/minio-go/v7"
)

type Provider interface {
	UploadFile(ctx context.Context, spaceID, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error
	GetFile(ctx context.Context, spaceID, objectKey string) ([]byte, error)
	DeleteFile(ctx context.Context, spaceID, objectKey string) error
	MakeSpaceBucket(ctx context.Context, spaceID string) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadFile(ctx context.Context, spaceID, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := i.MakeSpaceBucket(ctx, spaceID)
	if err != nil {
		return err
	}
	_, err = i.s3client.PutObject(ctx, i.getSpaceBucketName(spaceID), objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, spaceID, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.getSpaceBucketName(spaceID), objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	buf := bytes.Buffer{}
	_, err = io.Copy(&buf, object)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, spaceID, objectKey string) error {
	return i.s3client.RemoveObject(ctx, i.getSpaceBucketName(spaceID), objectKey, minio.RemoveObjectOptions{})
}

func (i impl) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	bucketName := i.getSpaceBucketName(spaceID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) getSpaceBucketName(spaceID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, spaceID)
}
