package aws

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func GetS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	svc := s3.NewFromConfig(cfg)
	return svc
}

// MediaStore uploads package images to the assets bucket and hands back
// the durable object URL recorded on the package row.
type MediaStore struct {
	client *s3.Client
	bucket string
}

func NewMediaStore() *MediaStore {
	return &MediaStore{
		client: GetS3Client(),
		bucket: os.Getenv("S3_ASSETS_BUCKET"),
	}
}

func (m *MediaStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	if m.client == nil {
		return "", fmt.Errorf("s3 client is not configured")
	}
	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return "", err
	}
	err = s3.NewObjectExistsWaiter(m.client).Wait(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	}, time.Minute)
	if err != nil {
		log.Printf("Failed attempt to wait for object %s to exist: %s\n", key, err.Error())
		return "", err
	}
	log.Printf("Added object '%s' to bucket '%s'", key, m.bucket)
	return m.objectURL(key), nil
}

func (m *MediaStore) objectURL(key string) string {
	if base := os.Getenv("S3_PUBLIC_URL"); base != "" {
		return fmt.Sprintf("%s/%s", base, key)
	}
	region := os.Getenv("AWS_REGION")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.bucket, region, key)
}
