// Package objectstore publishes model bundles to the S3 compatible bucket a
// model server loads its models from.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/bundler"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/metric"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/tracing"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
)

const (
	contentTypeGzip = "application/gzip"
	bundleExt       = ".tar.gz"
	tracerName      = "modelserver-objectstore"
)

var bucketLookupMapping = map[string]minio.BucketLookupType{
	"auto": minio.BucketLookupAuto,
	"dns":  minio.BucketLookupDNS,
	"path": minio.BucketLookupPath,
}

// objectClient is the part of *minio.Client the publisher uses.
type objectClient interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Object is a published bundle.
type Object struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

type Publisher struct {
	client objectClient
	bucket string
	prefix string
}

// NewPublisher builds a minio backed publisher. No request is made until the
// first call.
func NewPublisher(conf *Config) (*Publisher, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	lookup, ok := bucketLookupMapping[conf.BucketLookup]
	if !ok {
		lookup = minio.BucketLookupAuto
	}
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure:       conf.UseSSL,
		Region:       conf.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 client: %w", err)
	}
	return newPublisher(client, conf.Bucket, conf.Prefix), nil
}

func newPublisher(client objectClient, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// ObjectKey returns <prefix>/<framework>-<model>.tar.gz for a framework
// prefixed model name.
func (p *Publisher) ObjectKey(modelName string) string {
	return path.Join(p.prefix, modelName+bundleExt)
}

// Publish uploads the bundle, replacing any previous version. Call AddModel
// or UpdateModel with archive.ModelName afterwards to load it.
func (p *Publisher) Publish(ctx context.Context, archive *bundler.Archive) (*Object, error) {
	if archive == nil || archive.Path == "" {
		return nil, errors.New("bundle is not set")
	}
	key := p.ObjectKey(archive.ModelName)
	ctx, span := tracing.GetTracer(tracerName).Start(ctx, "objectstore.Publish")
	defer span.End()
	span.SetAttributes(attribute.String("bucket", p.bucket), attribute.String("key", key), attribute.Int64("size", archive.Size))

	startTime := time.Now()
	info, err := p.client.FPutObject(ctx, p.bucket, key, archive.Path, minio.PutObjectOptions{
		ContentType:    contentTypeGzip,
		SendContentMd5: true,
	})
	metric.Timing(metric.BundleUploadLatency, time.Since(startTime),
		metric.BuildTag(metric.NewTag(metric.TagFramework, archive.Framework.String())))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to upload %s to %s/%s: %w", archive.Path, p.bucket, key, err)
	}
	log.Info().Str("bucket", p.bucket).Str("key", key).Int64("size", info.Size).Msg("bundle published")
	return &Object{Bucket: p.bucket, Key: key, Size: info.Size, ETag: info.ETag}, nil
}

// Exists reports whether a bundle for modelName is in the bucket.
func (p *Publisher) Exists(ctx context.Context, modelName string) (bool, error) {
	_, err := p.client.StatObject(ctx, p.bucket, p.ObjectKey(modelName), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", p.ObjectKey(modelName), err)
}

// Remove deletes the bundle for modelName. Removing a missing bundle is not an
// error.
func (p *Publisher) Remove(ctx context.Context, modelName string) error {
	if err := p.client.RemoveObject(ctx, p.bucket, p.ObjectKey(modelName), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", p.ObjectKey(modelName), err)
	}
	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
