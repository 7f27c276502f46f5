package storage

import (
	"context"
	"errors"
	"log"
	"time"

	appconfig "plumtrips-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Document bytes never pass through the API server: uploads go straight to
// the bucket through short-lived presigned PUT URLs.

var (
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
)

const presignExpiry = 15 * time.Minute

// Connect initializes the S3 client. Optional like Redis: without a bucket
// configured, presign requests fail gracefully at call time.
func Connect() {
	cfg := appconfig.AppConfig
	if cfg.S3Bucket == "" {
		log.Println("⚠️  S3 bucket not configured, document uploads disabled")
		return
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		log.Println("⚠️  Failed to load AWS config, document uploads disabled:", err)
		return
	}

	client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // Required for MinIO/LocalStack
		}
	})
	presigner = s3.NewPresignClient(client)
	bucket = cfg.S3Bucket

	log.Println("✅ S3 storage configured for bucket", bucket)
}

// UploadDescriptor is handed to the browser, which PUTs the file bytes
// directly to the returned URL.
type UploadDescriptor struct {
	Upload    UploadRequest `json:"upload"`
	ObjectKey string        `json:"objectKey"`
}

type UploadRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// PresignUpload issues a presigned PUT for one object key.
func PresignUpload(ctx context.Context, objectKey, contentType string) (*UploadDescriptor, error) {
	if presigner == nil {
		return nil, errors.New("document storage is not configured")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &UploadDescriptor{
		Upload:    UploadRequest{Method: req.Method, URL: req.URL},
		ObjectKey: objectKey,
	}, nil
}
