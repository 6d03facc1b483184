// Package errors provides the error types returned by s3kit operations.
// It distinguishes configuration problems, transport failures, response
// decoding failures, and errors reported by the remote service itself.
package errors

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Error wraps a failure with context about the operation that produced it.
type Error struct {
	// Op is the operation that failed (e.g., "putObject", "createBucket")
	Op string

	// Bucket is the bucket name (if applicable)
	Bucket string

	// Key is the object key (if applicable)
	Key string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("s3kit.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("s3kit.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3kit.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3kit.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// Sentinel errors raised at build time, before any request is issued.
var (
	// ErrInvalidConfig indicates malformed client configuration
	ErrInvalidConfig = errors.New("s3kit: invalid configuration")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("s3kit: invalid bucket name")

	// ErrInvalidObjectKey indicates that the object key is invalid
	ErrInvalidObjectKey = errors.New("s3kit: invalid object key")
)

// APIError is the fault envelope an S3-compatible service returns alongside
// a non-2xx status. Code is the machine-readable identifier callers branch
// on; the remaining fields are diagnostic.
type APIError struct {
	XMLName xml.Name `xml:"Error"`

	// StatusCode is the HTTP status the envelope arrived with.
	// It is not part of the XML document.
	StatusCode int `xml:"-"`

	Code       ErrorCode `xml:"Code"`
	Message    string    `xml:"Message"`
	Resource   string    `xml:"Resource"`
	RequestID  string    `xml:"RequestId"`
	BucketName string    `xml:"BucketName"`
	HostID     string    `xml:"HostId"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status %d, request id %s)", e.Code, e.Message, e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
}

// TransportError indicates a connection-level failure (DNS, TLS, timeout,
// reset). It is never produced for a response the server actually sent.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("s3kit: transport: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates that a response body did not match the expected
// shape: invalid UTF-8 where text was expected, malformed XML where a
// listing was expected, or a failure body that is not a fault envelope.
// The raw status and body are kept for diagnostics.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	body := string(e.Body)
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("s3kit: cannot decode response (status %d): %v: %q", e.StatusCode, e.Err, body)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasCode reports whether the error chain contains an *APIError with the
// given code.
func HasCode(err error, code ErrorCode) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Code == code
	}
	return false
}

// IsTransport reports whether the error chain contains a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether the error chain contains a *DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsNoSuchBucket checks if an error indicates that a bucket was not found.
func IsNoSuchBucket(err error) bool {
	return HasCode(err, CodeNoSuchBucket)
}

// IsNoSuchKey checks if an error indicates that an object was not found.
func IsNoSuchKey(err error) bool {
	return HasCode(err, CodeNoSuchKey)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return HasCode(err, CodeAccessDenied)
}

// IsBucketAlreadyExists checks if an error indicates the bucket exists under
// another owner.
func IsBucketAlreadyExists(err error) bool {
	return HasCode(err, CodeBucketAlreadyExists)
}

// IsBucketAlreadyOwnedByYou checks if an error indicates the bucket exists
// and the caller already owns it.
func IsBucketAlreadyOwnedByYou(err error) bool {
	return HasCode(err, CodeBucketAlreadyOwnedByYou)
}
