// Package request turns a logical S3 operation into an addressed, signed
// *http.Request. Addressing style (path vs virtual-hosted) and SigV4
// signing are decided here; callers only describe the operation.
package request

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// signingService is the service name used in the SigV4 credential scope.
const signingService = "s3"

// Descriptor describes one S3 operation independent of signing and
// transport. It is built fresh per call and never mutated afterwards.
type Descriptor struct {
	// Method is the HTTP verb (GET, PUT, DELETE, HEAD, POST)
	Method string

	// Bucket is the bucket name the operation addresses
	Bucket string

	// Key is the object key. Empty for bucket-level operations.
	// The logical, unencoded key: percent-encoding happens during URL
	// construction.
	Key string

	// Query holds the operation's query parameters (e.g. list-type)
	Query url.Values

	// Header holds extra request headers (e.g. Content-Type)
	Header http.Header

	// Body is the request payload, nil for body-less operations
	Body []byte
}

// Builder constructs and signs requests for one endpoint/credential context.
// It is immutable and safe for concurrent use.
type Builder struct {
	endpoint  *url.URL
	region    string
	creds     aws.CredentialsProvider
	pathStyle bool
	signer    *v4.Signer
	now       func() time.Time
}

// NewBuilder returns a Builder bound to the given endpoint and credentials.
func NewBuilder(endpoint *url.URL, region string, creds aws.CredentialsProvider, pathStyle bool) *Builder {
	return &Builder{
		endpoint: endpoint,
		region:   region,
		creds:    creds,
		// The URL path is escaped during construction, so the signer must
		// take it verbatim for the canonical request.
		signer: v4.NewSigner(func(o *v4.SignerOptions) {
			o.DisableURIPathEscaping = true
		}),
		pathStyle: pathStyle,
		now:       time.Now,
	}
}

// URL resolves a descriptor into a request URL. Path style produces
// endpoint/bucket/key, virtual-hosted style produces bucket.endpoint/key.
func (b *Builder) URL(d Descriptor) *url.URL {
	u := *b.endpoint

	logical := strings.TrimSuffix(b.endpoint.Path, "/")
	escaped := logical
	if b.pathStyle {
		logical += "/" + d.Bucket
		escaped += "/" + d.Bucket
	} else {
		u.Host = d.Bucket + "." + b.endpoint.Host
	}
	if d.Key != "" {
		logical += "/" + d.Key
		escaped += "/" + escapeKey(d.Key)
	}
	if logical == "" {
		logical, escaped = "/", "/"
	}

	u.Path = logical
	u.RawPath = escaped
	if d.Query != nil {
		u.RawQuery = d.Query.Encode()
	}
	return &u
}

// NewRequest builds and signs a single-use request for the descriptor.
// A fresh timestamp is taken on every call; signatures are time-scoped and
// a signed request must not be cached or replayed.
func (b *Builder) NewRequest(ctx context.Context, d Descriptor) (*http.Request, error) {
	u := b.URL(d)

	var body io.Reader
	if d.Body != nil {
		body = bytes.NewReader(d.Body)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for name, values := range d.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	payloadHash := hashPayload(d.Body)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	creds, err := b.creds.Retrieve(ctx)
	if err != nil {
		return nil, err
	}

	if err := b.signer.SignHTTP(ctx, creds, req, payloadHash, signingService, b.region, b.now().UTC()); err != nil {
		return nil, err
	}
	return req, nil
}

// escapeKey percent-encodes each path segment of an object key, preserving
// the "/" separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func hashPayload(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
