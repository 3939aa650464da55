package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "crewtime-backend/s3"
)

func InitS3(ctx context.Context) {
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}
	log.Info("S3 client initialized")
}
