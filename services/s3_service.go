package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"roommate_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	photoKeyPrefix = "profile-photos/"
	presignExpiry  = 5 * time.Minute
)

// PhotoService hands out presigned upload URLs for profile photos. The stored
// photoUrl of a profile is BaseURL joined with the object key.
type PhotoService struct {
	Presigner *s3.PresignClient
	Bucket    string
	BaseURL   string
}

// NewPhotoService builds a PhotoService from the default AWS credential chain
func NewPhotoService(ctx context.Context, region, bucket, baseURL string) (*PhotoService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for S3: %w", err)
	}
	return &PhotoService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		BaseURL:   baseURL,
	}, nil
}

// UploadURL generates a presigned PUT URL for a new photo object
func (ps *PhotoService) UploadURL(ctx context.Context, fileName, fileType string) (*models.PhotoUpload, error) {
	key := photoKeyPrefix + uuid.New().String() + "-" + path.Base(fileName)
	presigned, err := ps.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return &models.PhotoUpload{
		URL:      presigned.URL,
		Key:      key,
		PhotoURL: strings.TrimRight(ps.BaseURL, "/") + "/" + key,
	}, nil
}
