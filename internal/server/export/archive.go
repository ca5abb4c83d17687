package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Archive keeps a copy of exported documents and hands back a link to it.
type Archive interface {
	Store(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// S3Config are the settings of an S3 compatible bucket (AWS or MinIO).
type S3Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
	LinkExpires  time.Duration
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type getPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Archive uploads exports with PutObject and returns presigned GET URLs.
type S3Archive struct {
	client    objectPutter
	presigner getPresigner
	bucket    string
	expires   time.Duration
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// NewS3Archive builds the S3 client from static credentials.
func NewS3Archive(ctx context.Context, c S3Config) (*S3Archive, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	expires := c.LinkExpires
	if expires <= 0 {
		expires = 15 * time.Minute
	}

	return &S3Archive{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    c.Bucket,
		expires:   expires,
	}, nil
}

func (a *S3Archive) Store(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(a.expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}

// StorageKey places a file under a dated prefix with a random component.
func StorageKey(now time.Time, fileName string) string {
	return fmt.Sprintf("exports/%d/%02d/%02d/%s/%s", now.Year(), now.Month(), now.Day(), uuid.NewString(), fileName)
}
