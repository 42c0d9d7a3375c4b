// Package s3store はS3互換ストレージ上のオブジェクト削除を提供します。
package s3store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/metrics"
)

// ProviderName は metrics のラベルに使う名前です。
const ProviderName = "s3"

// ErrNoBucket はバケット名が設定されていないことを表します。
var ErrNoBucket = errors.New("s3 bucket not configured")

// Config はS3接続設定です。Endpoint を指定するとMinIO等のS3互換ストレージに接続します。
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ObjectDeleter はStoreが利用するS3 APIの部分集合です。
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store はS3のDeleteObjectでオブジェクトを削除するObjectStorage実装です。
type Store struct {
	api    ObjectDeleter
	bucket string
}

var _ usecase.ObjectStorage = (*Store)(nil)

// New は設定からS3クライアントを構築してStoreを返します。
// アクセスキーが指定されていれば静的認証情報を、なければデフォルトの認証チェーンを使います。
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, cfg.Bucket), nil
}

// NewWithClient は既存のクライアントでStoreを生成します。
func NewWithClient(api ObjectDeleter, bucket string) *Store {
	return &Store{api: api, bucket: bucket}
}

// Delete は指定キーのオブジェクトを削除します。
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		metrics.RecordStorageDeletion(ProviderName, "failure")
		return fmt.Errorf("s3 delete %q: %w", key, err)
	}
	metrics.RecordStorageDeletion(ProviderName, "success")
	return nil
}
