package storage_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"gravecare/pkg/storage"
)

var Module = fx.Provide(
	provideStorageGateway)

func provideStorageGateway() storage.Gateway {
	gateway, err := storage.NewS3Gateway(storage.S3Config{
		Region: os.Getenv("S3_REGION"),
		Key:    os.Getenv("S3_KEY"),
		Secret: os.Getenv("S3_SECRET"),
		Bucket: os.Getenv("S3_BUCKET"),
	})
	if err != nil {
		log.Fatalf("Error creating storage gateway: %v", err)
	}
	return gateway
}
