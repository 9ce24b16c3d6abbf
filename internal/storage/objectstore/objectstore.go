// Package objectstore keeps the users file as a single object in an
// S3-compatible bucket (AWS S3, MinIO). The object body uses the same
// "username,password" line format as the flat-file backend; every save
// uploads the whole body, which S3 swaps in atomically.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/users"
)

const contentType = "text/plain; charset=utf-8"

// ObjectAPI is the part of *s3.Client the backend needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Options locate the object and the service holding it.
type Options struct {
	Bucket       string
	Key          string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type Backend struct {
	client ObjectAPI
	bucket string
	key    string
	logger logging.Logger
}

// Open builds an S3 client from opts. Static credentials are used when an
// access key is given, otherwise the default AWS credential chain applies.
func Open(ctx context.Context, opts Options, logger logging.Logger) (*Backend, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return New(client, opts.Bucket, opts.Key, logger), nil
}

func New(client ObjectAPI, bucket, key string, logger logging.Logger) *Backend {
	return &Backend{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger.With("backend", "s3", "bucket", bucket, "key", key),
	}
}

// Load downloads and decodes the object. A missing object is an empty store.
func (b *Backend) Load(ctx context.Context) ([]users.User, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			b.logger.Debug(ctx, "users object not found, starting empty")
			return []users.User{}, nil
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	list, err := users.Decode(out.Body, func(lineNo int, err error) {
		b.logger.Warn(ctx, "skipping malformed record", "line", lineNo, "error", err)
	})
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}

	return list, nil
}

// Save uploads the whole collection as the new object body.
func (b *Backend) Save(ctx context.Context, list []users.User) error {
	body, err := users.Marshal(list)
	if err != nil {
		return err
	}

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(b.key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}

	b.logger.Debug(ctx, "users object written", "records", len(list))
	return nil
}

func (b *Backend) Close() error { return nil }
