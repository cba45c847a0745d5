package image

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultPresignExpiry = time.Hour

// ObjectStoreOptions configures an S3-compatible bucket used to host input
// images for the provider.
type ObjectStoreOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Prefix    string
	// PublicURL, when set, is used as the base of returned URLs instead of a
	// presigned GET.
	PublicURL string
	Expiry    time.Duration
}

// ObjectStoreEncoder puts the image in a bucket and references it by URL.
type ObjectStoreEncoder struct {
	client *minio.Client
	opts   ObjectStoreOptions
}

func NewObjectStoreEncoder(opts ObjectStoreOptions) (*ObjectStoreEncoder, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("objectstore: bucket is required")
	}
	endpoint := opts.Endpoint
	useSSL := opts.UseSSL
	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}
	if endpoint == "" {
		return nil, fmt.Errorf("objectstore: endpoint is required")
	}
	if opts.Expiry <= 0 {
		opts.Expiry = defaultPresignExpiry
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: useSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &ObjectStoreEncoder{client: client, opts: opts}, nil
}

func (e *ObjectStoreEncoder) Name() string { return StrategyObjectStore }

func (e *ObjectStoreEncoder) Encode(ctx context.Context, in Input, credential string) (Ref, error) {
	key := e.objectKey(in.MimeType)
	_, err := e.client.PutObject(ctx, e.opts.Bucket, key, bytes.NewReader(in.Data), in.Size(), minio.PutObjectOptions{
		ContentType: in.MimeType,
	})
	if err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("object upload failed: %v", err), credential, err)
	}

	if e.opts.PublicURL != "" {
		return Ref{URI: strings.TrimRight(e.opts.PublicURL, "/") + "/" + key}, nil
	}

	signed, err := e.client.PresignedGetObject(ctx, e.opts.Bucket, key, e.opts.Expiry, nil)
	if err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("failed to presign object url: %v", err), credential, err)
	}
	return Ref{URI: signed.String()}, nil
}

func (e *ObjectStoreEncoder) objectKey(mimeType string) string {
	prefix := strings.Trim(e.opts.Prefix, "/")
	name := uuid.NewString() + extensionFor(mimeType)
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
