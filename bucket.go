package s3kit

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"

	s3errors "github.com/quillstack/s3kit/errors"
	"github.com/quillstack/s3kit/internal/request"
	"github.com/quillstack/s3kit/internal/resolve"
	"github.com/quillstack/s3kit/internal/validation"
	"github.com/quillstack/s3kit/s3types"
)

// Bucket is a handle bound to one bucket name. It carries no cached
// knowledge of the remote bucket's state between calls; every operation
// re-verifies against the server. Safe for concurrent use.
type Bucket struct {
	client *Client
	name   string
}

// Name returns the bucket name the handle is bound to.
func (b *Bucket) Name() string {
	return b.name
}

// Create creates the bucket on the remote service.
// Fails with BucketAlreadyExists or BucketAlreadyOwnedByYou if the bucket
// already exists; see GetOrCreate for idempotent semantics.
func (b *Bucket) Create(ctx context.Context) error {
	if err := b.create(ctx); err != nil {
		return s3errors.NewError("createBucket", err).WithBucket(b.name)
	}
	return nil
}

// GetOrCreate ensures the bucket exists, treating BucketAlreadyExists and
// BucketAlreadyOwnedByYou as success. Calling it repeatedly is idempotent.
func (b *Bucket) GetOrCreate(ctx context.Context) error {
	err := b.create(ctx)
	if err == nil || s3errors.IsBucketAlreadyExists(err) || s3errors.IsBucketAlreadyOwnedByYou(err) {
		return nil
	}
	return s3errors.NewError("getOrCreateBucket", err).WithBucket(b.name)
}

func (b *Bucket) create(ctx context.Context) error {
	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodPut,
		Bucket: b.name,
	})
	if err != nil {
		return err
	}
	return resolve.None(raw)
}

// Exists reports whether the bucket exists, using a HEAD request.
// A 404 is a definitive "no", not an error.
func (b *Bucket) Exists(ctx context.Context) (bool, error) {
	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodHead,
		Bucket: b.name,
	})
	if err != nil {
		return false, s3errors.NewError("headBucket", err).WithBucket(b.name)
	}
	switch {
	case raw.StatusCode == http.StatusNotFound:
		return false, nil
	case raw.StatusCode >= 200 && raw.StatusCode < 300:
		return true, nil
	default:
		return false, s3errors.NewError("headBucket", resolve.None(raw)).WithBucket(b.name)
	}
}

// Delete deletes the bucket. Fails with NoSuchBucket if it does not exist
// and BucketNotEmpty if it still holds objects.
func (b *Bucket) Delete(ctx context.Context) error {
	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodDelete,
		Bucket: b.name,
	})
	if err == nil {
		err = resolve.None(raw)
	}
	if err != nil {
		return s3errors.NewError("deleteBucket", err).WithBucket(b.name)
	}
	return nil
}

// PutObject stores data under the given key. The content type is detected
// from the payload.
func (b *Bucket) PutObject(ctx context.Context, key string, data []byte) error {
	if err := validation.ValidateObjectKey(key); err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Content-Type", mimetype.Detect(data).String())

	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodPut,
		Bucket: b.name,
		Key:    key,
		Header: header,
		Body:   data,
	})
	if err == nil {
		err = resolve.None(raw)
	}
	if err != nil {
		return s3errors.NewError("putObject", err).WithBucket(b.name).WithKey(key)
	}
	return nil
}

// GetObject retrieves the object's content as raw bytes.
func (b *Bucket) GetObject(ctx context.Context, key string) ([]byte, error) {
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, err
	}

	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodGet,
		Bucket: b.name,
		Key:    key,
	})
	var data []byte
	if err == nil {
		data, err = resolve.Bytes(raw)
	}
	if err != nil {
		return nil, s3errors.NewError("getObject", err).WithBucket(b.name).WithKey(key)
	}
	return data, nil
}

// GetObjectString retrieves the object's content as UTF-8 text.
// Content that is not valid UTF-8 fails with a DecodeError; it is never
// silently replaced or truncated.
func (b *Bucket) GetObjectString(ctx context.Context, key string) (string, error) {
	if err := validation.ValidateObjectKey(key); err != nil {
		return "", err
	}

	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodGet,
		Bucket: b.name,
		Key:    key,
	})
	var text string
	if err == nil {
		text, err = resolve.Text(raw)
	}
	if err != nil {
		return "", s3errors.NewError("getObjectString", err).WithBucket(b.name).WithKey(key)
	}
	return text, nil
}

// GetObjectReader retrieves the object's content as a stream. The response
// status is resolved before the reader is returned, so a non-2xx response
// surfaces as an error here, never through the reader. The caller must
// close the reader.
func (b *Bucket) GetObjectReader(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validation.ValidateObjectKey(key); err != nil {
		return nil, err
	}

	req, err := b.client.builder.NewRequest(ctx, request.Descriptor{
		Method: http.MethodGet,
		Bucket: b.name,
		Key:    key,
	})
	if err != nil {
		return nil, s3errors.NewError("getObjectReader", err).WithBucket(b.name).WithKey(key)
	}

	start := time.Now()
	body, err := resolve.ExecuteStream(b.client.httpClient, req)
	b.logRequest(req, start, err)
	if err != nil {
		return nil, s3errors.NewError("getObjectReader", err).WithBucket(b.name).WithKey(key)
	}
	return body, nil
}

// DeleteObject removes the object under the given key. Deleting a key that
// does not exist succeeds, per S3 semantics.
func (b *Bucket) DeleteObject(ctx context.Context, key string) error {
	if err := validation.ValidateObjectKey(key); err != nil {
		return err
	}

	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodDelete,
		Bucket: b.name,
		Key:    key,
	})
	if err == nil {
		err = resolve.None(raw)
	}
	if err != nil {
		return s3errors.NewError("deleteObject", err).WithBucket(b.name).WithKey(key)
	}
	return nil
}

// ListObjects returns one page of the bucket listing (list-type=2).
// Pagination is explicit: when the result is truncated, pass its
// NextContinuationToken in the next call's options.
func (b *Bucket) ListObjects(ctx context.Context, opts s3types.ListOptions) (*s3types.ListResult, error) {
	query := url.Values{}
	query.Set("list-type", "2")
	if opts.Prefix != "" {
		query.Set("prefix", opts.Prefix)
	}
	if opts.ContinuationToken != "" {
		query.Set("continuation-token", opts.ContinuationToken)
	}
	if opts.MaxKeys > 0 {
		query.Set("max-keys", strconv.Itoa(opts.MaxKeys))
	}

	raw, err := b.do(ctx, request.Descriptor{
		Method: http.MethodGet,
		Bucket: b.name,
		Query:  query,
	})
	var listing listBucketResult
	if err == nil {
		err = resolve.XML(raw, &listing)
	}
	if err != nil {
		return nil, s3errors.NewError("listObjects", err).WithBucket(b.name)
	}

	result := &s3types.ListResult{
		Name:                  listing.Name,
		Prefix:                listing.Prefix,
		KeyCount:              listing.KeyCount,
		IsTruncated:           listing.IsTruncated,
		NextContinuationToken: listing.NextContinuationToken,
		Objects:               make([]s3types.ObjectInfo, 0, len(listing.Contents)),
	}
	for _, obj := range listing.Contents {
		result.Objects = append(result.Objects, s3types.ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ETag:         obj.ETag,
			StorageClass: obj.StorageClass,
		})
	}
	return result, nil
}

// ListAllObjects lists every object under the prefix, threading the
// continuation token until the listing is exhausted.
func (b *Bucket) ListAllObjects(ctx context.Context, prefix string) ([]s3types.ObjectInfo, error) {
	var objects []s3types.ObjectInfo
	opts := s3types.ListOptions{Prefix: prefix}
	for {
		page, err := b.ListObjects(ctx, opts)
		if err != nil {
			return nil, err
		}
		objects = append(objects, page.Objects...)
		if !page.IsTruncated || page.NextContinuationToken == "" {
			return objects, nil
		}
		opts.ContinuationToken = page.NextContinuationToken
	}
}

// do signs, executes, and logs a single request exchange.
func (b *Bucket) do(ctx context.Context, d request.Descriptor) (*resolve.RawResponse, error) {
	req, err := b.client.builder.NewRequest(ctx, d)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := resolve.Execute(b.client.httpClient, req)
	b.logRequest(req, start, err)
	if err != nil {
		return nil, err
	}
	b.client.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", raw.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	return raw, nil
}

func (b *Bucket) logRequest(req *http.Request, start time.Time, err error) {
	if err == nil {
		return
	}
	b.client.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("request failed")
}

// listBucketResult is the XML wire shape of a ListObjectsV2 response.
type listBucketResult struct {
	XMLName               xml.Name       `xml:"ListBucketResult"`
	Name                  string         `xml:"Name"`
	Prefix                string         `xml:"Prefix"`
	KeyCount              int            `xml:"KeyCount"`
	MaxKeys               int            `xml:"MaxKeys"`
	IsTruncated           bool           `xml:"IsTruncated"`
	ContinuationToken     string         `xml:"ContinuationToken"`
	NextContinuationToken string         `xml:"NextContinuationToken"`
	Contents              []listedObject `xml:"Contents"`
}

type listedObject struct {
	Key          string    `xml:"Key"`
	LastModified time.Time `xml:"LastModified"`
	ETag         string    `xml:"ETag"`
	Size         int64     `xml:"Size"`
	StorageClass string    `xml:"StorageClass"`
}
