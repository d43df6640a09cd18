package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks . ObjectHeader

// ObjectHeader is the subset of the S3 client used for existence checks.
type ObjectHeader interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Verifier checks that derived s3:// URIs point at existing objects.
type Verifier struct {
	client ObjectHeader
	logger *zerolog.Logger
}

func NewVerifier(client ObjectHeader, logger *zerolog.Logger) *Verifier {
	return &Verifier{client: client, logger: logger}
}

// NewS3Verifier builds a Verifier on the default AWS credential chain.
func NewS3Verifier(ctx context.Context, region string, logger *zerolog.Logger) (*Verifier, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewVerifier(s3.NewFromConfig(awsCfg), logger), nil
}

// Verify reports whether the object behind uri exists. Malformed URIs and
// lookup failures are logged and reported as missing.
func (v *Verifier) Verify(ctx context.Context, uri string) bool {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		v.logger.Warn().Err(err).Str("uri", uri).Msg("Invalid storage URI")
		return false
	}

	_, err = v.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		v.logger.Warn().Str("uri", uri).Msg("Storage object not found")
		return false
	}

	v.logger.Warn().Err(err).Str("uri", uri).Msg("Storage head object failed")
	return false
}

// ParseURI splits s3://bucket/key into its bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri needs bucket and key: %q", uri)
	}
	return bucket, key, nil
}
