// Package s3types provides shared type definitions for the s3kit module.
package s3types

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ObjectInfo describes a single object stored in a bucket, as reported by a
// list operation.
type ObjectInfo struct {
	// Key is the full object key within the bucket
	Key string

	// Size is the object size in bytes
	Size int64

	// LastModified is when the object was last written
	LastModified time.Time

	// ETag is the entity tag returned by the service
	ETag string

	// StorageClass is the storage class reported by the service
	StorageClass string
}

// ListOptions controls how ListObjects filters and paginates results.
type ListOptions struct {
	// Prefix restricts results to objects whose key starts with this string.
	// Use "" to list everything in the bucket.
	Prefix string

	// ContinuationToken is the pagination cursor returned by a previous
	// page. Pass "" to start from the beginning.
	ContinuationToken string

	// MaxKeys caps the number of results per page. 0 means the service
	// default (1000).
	MaxKeys int
}

// ListResult is one page of a bucket listing.
type ListResult struct {
	// Name is the bucket that was listed
	Name string

	// Prefix echoes the requested prefix
	Prefix string

	// KeyCount is the number of keys in this page
	KeyCount int

	// IsTruncated is true when more results remain
	IsTruncated bool

	// NextContinuationToken is the cursor for the next page.
	// Only set when IsTruncated is true.
	NextContinuationToken string

	// Objects are the object records in this page, in the order the
	// service returned them
	Objects []ObjectInfo
}

// ClientConfig holds the resolved client configuration.
// It is populated by functional options and immutable after New returns.
type ClientConfig struct {
	// Endpoint is the absolute URL of the S3-compatible service
	Endpoint string

	// AccessKey is the access key ID
	AccessKey string

	// SecretKey is the secret access key
	SecretKey string

	// SessionToken is an optional session token for temporary credentials
	SessionToken string

	// Region is the signing region. Defaults to "us-east-1".
	Region string

	// PathStyle selects path-style addressing (endpoint/bucket/key) over
	// virtual-hosted style (bucket.endpoint/key). Most S3-compatible
	// services outside AWS require path style.
	PathStyle bool

	// Timeout is applied to the default HTTP client.
	// Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the transport. Connect/read timeouts and
	// redirect policy are its concern.
	HTTPClient *http.Client

	// Logger receives one debug event per executed request.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	// UseDefaultCredentials resolves credentials from the AWS default
	// chain (environment, shared config, IMDS) instead of AccessKey and
	// SecretKey.
	UseDefaultCredentials bool
}

// Option is a functional option for configuring the client.
type Option func(*ClientConfig)
