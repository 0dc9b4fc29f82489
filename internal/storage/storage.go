package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/acceslab/acceslab-go/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	Client     *minioSDK.Client
	BucketName string
)

// InitMinio connects to the object store and makes sure the bucket
// exists. Uploaded objects (equipment images, report exports) are
// addressed as <endpoint>/<bucket>/<object>.
func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// UploadObject stores content under objectName and returns the public
// URL of the stored object.
func UploadObject(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("object storage not initialized")
	}
	if strings.TrimSpace(objectName) == "" {
		return "", fmt.Errorf("object name cannot be empty")
	}
	_, err := Client.PutObject(ctx, BucketName, objectName, content, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return ObjectURL(objectName), nil
}

// UploadString uploads a string payload, used for report exports.
func UploadString(ctx context.Context, objectName, contentType, content string) (string, error) {
	return UploadObject(ctx, objectName, contentType, strings.NewReader(content), int64(len(content)))
}

func DeleteObject(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("object storage not initialized")
	}
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}

func ObjectURL(objectName string) string {
	scheme := "http"
	if config.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.MinioEndpoint, BucketName, objectName)
}

// Enabled reports whether the store was initialized. Handlers degrade
// to a clear error instead of panicking when it was not.
func Enabled() bool { return Client != nil }
