// Where: internal/provisioner/content_sync.go
// What: One-shot content sync into a store.
// Why: Copy a local tree up and remove objects absent from the source.
package provisioner

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/websmith/websmith/internal/ports"
)

// S3SyncAPI is the slice of the object store the syncer needs.
type S3SyncAPI interface {
	ListKeys(ctx context.Context, bucket string) ([]string, error)
	PutObject(ctx context.Context, bucket, key string, body []byte) error
	DeleteObject(ctx context.Context, bucket, key string) error
}

// ContentSyncer uploads a local content tree into a bucket. With prune
// enabled, keys missing from the source tree are deleted afterwards.
type ContentSyncer struct {
	API S3SyncAPI
}

// NewContentSyncer wires a syncer over the given API.
func NewContentSyncer(api S3SyncAPI) *ContentSyncer {
	return &ContentSyncer{API: api}
}

// Sync walks sourcePath and uploads every regular file under its relative
// key, then prunes orphans when requested.
func (s *ContentSyncer) Sync(ctx context.Context, sourcePath, bucket string, prune bool) (ports.SyncSummary, error) {
	var summary ports.SyncSummary
	if s.API == nil {
		return summary, fmt.Errorf("content sync api not configured")
	}
	if strings.TrimSpace(bucket) == "" {
		return summary, fmt.Errorf("bucket is required")
	}

	uploaded := map[string]bool{}
	err := filepath.WalkDir(sourcePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(sourcePath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := s.API.PutObject(ctx, bucket, key, body); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		uploaded[key] = true
		summary.Uploaded++
		return nil
	})
	if err != nil {
		return summary, err
	}

	if !prune {
		return summary, nil
	}

	existing, err := s.API.ListKeys(ctx, bucket)
	if err != nil {
		return summary, err
	}
	for _, key := range existing {
		if uploaded[key] {
			continue
		}
		if err := s.API.DeleteObject(ctx, bucket, key); err != nil {
			return summary, fmt.Errorf("prune %s: %w", key, err)
		}
		summary.Pruned++
	}
	return summary, nil
}

type awsS3Client struct {
	client *s3.Client
}

func (c awsS3Client) ListKeys(ctx context.Context, bucket string) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, object := range page.Contents {
			if object.Key == nil {
				continue
			}
			keys = append(keys, *object.Key)
		}
	}
	return keys, nil
}

func (c awsS3Client) PutObject(ctx context.Context, bucket, key string, body []byte) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	return err
}

func (c awsS3Client) DeleteObject(ctx context.Context, bucket, key string) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}
