// Package s3kit provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable
// configuration.
package s3kit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillstack/s3kit/s3types"
)

// WithEndpoint sets the URL of the S3-compatible service.
// Required; must be an absolute URL.
func WithEndpoint(endpoint string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithCredentials sets the access key ID and secret access key.
// Required unless WithDefaultCredentials is used.
func WithCredentials(accessKey, secretKey string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.AccessKey = accessKey
		c.SecretKey = secretKey
	}
}

// WithSessionToken sets a session token for temporary credentials.
func WithSessionToken(token string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.SessionToken = token
	}
}

// WithDefaultCredentials resolves credentials from the AWS default chain
// (environment variables, shared config, IMDS) instead of explicit keys.
func WithDefaultCredentials() s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.UseDefaultCredentials = true
	}
}

// WithRegion sets the signing region. Defaults to "us-east-1".
func WithRegion(region string) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Region = region
	}
}

// WithPathStyle selects path-style addressing (endpoint/bucket/key) instead
// of virtual-hosted style (bucket.endpoint/key). Required by most
// S3-compatible services outside AWS (MinIO, LocalStack, ...).
// Default is false (virtual-hosted style).
func WithPathStyle(pathStyle bool) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.PathStyle = pathStyle
	}
}

// WithTimeout sets the timeout on the default HTTP client.
// Ignored when WithHTTPClient is used. Default is 60 seconds.
func WithTimeout(timeout time.Duration) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithHTTPClient provides a custom HTTP client. This gives full control
// over transport behavior: connect/read timeouts, redirect policy, proxies,
// connection pooling.
func WithHTTPClient(client *http.Client) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithLogger installs a logger that receives one debug event per executed
// request. Default is a no-op logger.
func WithLogger(logger zerolog.Logger) s3types.Option {
	return func(c *s3types.ClientConfig) {
		c.Logger = logger
	}
}
