// Package s3kit provides client initialization and configuration.
//
// A Client holds one endpoint/credential context; Bucket handles bound to
// it perform the actual bucket and object operations.
package s3kit

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/zerolog"

	s3errors "github.com/quillstack/s3kit/errors"
	"github.com/quillstack/s3kit/internal/request"
	"github.com/quillstack/s3kit/internal/validation"
	"github.com/quillstack/s3kit/s3types"
)

// DefaultRegion is the signing region used when none is configured and the
// credential chain does not supply one.
const DefaultRegion = "us-east-1"

// defaultTimeout is applied to the default HTTP client.
const defaultTimeout = 60 * time.Second

// Client is an S3 client bound to one endpoint and credential set.
// It is immutable after New returns and safe for concurrent use; the only
// shared mutable state is the HTTP client's connection pool, which manages
// its own synchronization.
type Client struct {
	httpClient *http.Client
	builder    *request.Builder
	log        zerolog.Logger
}

// New creates a new client with the provided options.
//
// All configuration problems (malformed endpoint, missing credentials) are
// reported here, never at call time.
//
// Example:
//
//	client, err := s3kit.New(
//	    s3kit.WithEndpoint("http://localhost:9000"),
//	    s3kit.WithCredentials("minioadmin", "minioadmin"),
//	    s3kit.WithPathStyle(true),
//	)
func New(opts ...s3types.Option) (*Client, error) {
	cfg := &s3types.ClientConfig{
		Timeout: defaultTimeout,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Endpoint == "" {
		return nil, s3errors.NewError("new", s3errors.ErrInvalidConfig).
			WithMessage("endpoint is required")
	}
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil || !endpoint.IsAbs() || endpoint.Host == "" {
		return nil, s3errors.NewError("new", s3errors.ErrInvalidConfig).
			WithMessage("endpoint must be a valid absolute URL")
	}

	var creds aws.CredentialsProvider
	switch {
	case cfg.UseDefaultCredentials:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, s3errors.NewError("new", err).
				WithMessage("loading default credential chain")
		}
		creds = awsCfg.Credentials
		if cfg.Region == "" {
			cfg.Region = awsCfg.Region
		}
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return nil, s3errors.NewError("new", s3errors.ErrInvalidConfig).
			WithMessage("access key and secret key are required")
	default:
		creds = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken)
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		builder:    request.NewBuilder(endpoint, cfg.Region, creds, cfg.PathStyle),
		log:        cfg.Logger,
	}, nil
}

// Bucket returns a handle bound to the given bucket name.
// The bucket is not created on the remote service; see Bucket.Create.
func (c *Client) Bucket(name string) (*Bucket, error) {
	if err := validation.ValidateBucketName(name); err != nil {
		return nil, err
	}
	return &Bucket{client: c, name: name}, nil
}
