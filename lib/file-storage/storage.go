package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/config"
	"crewtime-backend/lib/utils/helpers"
	s3client "crewtime-backend/s3"
)

type Provider interface {
	UploadFile(ctx context.Context, userID, folder, fileName, contentType string, fileReader io.Reader, fileSize int64) (objectKey string, err error)
	GetFile(ctx context.Context, userID, folder, fileName string) ([]byte, error)
	DeleteFile(ctx context.Context, userID, folder, fileName string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		client: s3client.Client,
	}
}

type impl struct {
	client *minio.Client
}

func (i impl) getLogger(userID, objectKey string) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("object_key", objectKey)
}

// getObjectKey scopes every object under userID/folder so one user's
// uploads can never shadow another's.
func getObjectKey(userID, folder, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", userID, folder, helpers.SanitizeFileName(fileName))
}

func (i impl) UploadFile(ctx context.Context, userID, folder, fileName, contentType string, fileReader io.Reader, fileSize int64) (objectKey string, err error) {
	objectKey = getObjectKey(userID, folder, fileName)
	logger := i.getLogger(userID, objectKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("failed to upload file")
		return "", errors.Wrap(err, "failed to upload file")
	}
	logger.Info("file uploaded")
	return objectKey, nil
}

func (i impl) GetFile(ctx context.Context, userID, folder, fileName string) ([]byte, error) {
	objectKey := getObjectKey(userID, folder, fileName)
	object, err := i.client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get file")
	}
	defer object.Close()
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, object); err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, userID, folder, fileName string) error {
	objectKey := getObjectKey(userID, folder, fileName)
	logger := i.getLogger(userID, objectKey)
	err := i.client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		logger.WithError(err).Error("failed to delete file")
		return errors.Wrap(err, "failed to delete file")
	}
	logger.Info("file deleted")
	return nil
}
