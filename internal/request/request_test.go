package request

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func testBuilder(t *testing.T, endpoint string, pathStyle bool) *Builder {
	t.Helper()
	creds := credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", "")
	return NewBuilder(mustParse(t, endpoint), "us-east-1", creds, pathStyle)
}

func TestBuilder_URL(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		pathStyle  bool
		descriptor Descriptor
		want       string
	}{
		{
			name:       "path style bucket root",
			endpoint:   "http://localhost:9000",
			pathStyle:  true,
			descriptor: Descriptor{Method: http.MethodPut, Bucket: "docs"},
			want:       "http://localhost:9000/docs",
		},
		{
			name:       "path style object key",
			endpoint:   "http://localhost:9000",
			pathStyle:  true,
			descriptor: Descriptor{Method: http.MethodGet, Bucket: "docs", Key: "a/b.txt"},
			want:       "http://localhost:9000/docs/a/b.txt",
		},
		{
			name:       "path style key needing escaping",
			endpoint:   "http://localhost:9000",
			pathStyle:  true,
			descriptor: Descriptor{Method: http.MethodGet, Bucket: "docs", Key: "dir/my file.txt"},
			want:       "http://localhost:9000/docs/dir/my%20file.txt",
		},
		{
			name:       "virtual hosted bucket root",
			endpoint:   "https://s3.example.com",
			pathStyle:  false,
			descriptor: Descriptor{Method: http.MethodPut, Bucket: "docs"},
			want:       "https://docs.s3.example.com/",
		},
		{
			name:       "virtual hosted object key",
			endpoint:   "https://s3.example.com",
			pathStyle:  false,
			descriptor: Descriptor{Method: http.MethodGet, Bucket: "docs", Key: "a/b.txt"},
			want:       "https://docs.s3.example.com/a/b.txt",
		},
		{
			name:      "query parameters",
			endpoint:  "http://localhost:9000",
			pathStyle: true,
			descriptor: Descriptor{
				Method: http.MethodGet,
				Bucket: "docs",
				Query:  url.Values{"list-type": {"2"}, "prefix": {"reports/"}},
			},
			want: "http://localhost:9000/docs?list-type=2&prefix=reports%2F",
		},
		{
			name:       "endpoint with base path",
			endpoint:   "http://localhost:9000/base/",
			pathStyle:  true,
			descriptor: Descriptor{Method: http.MethodPut, Bucket: "docs"},
			want:       "http://localhost:9000/base/docs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBuilder(t, tt.endpoint, tt.pathStyle)
			assert.Equal(t, tt.want, b.URL(tt.descriptor).String())
		})
	}
}

func TestNewRequest_SignsWithFreshTimestamp(t *testing.T) {
	b := testBuilder(t, "http://localhost:9000", true)

	d := Descriptor{
		Method: http.MethodPut,
		Bucket: "docs",
		Key:    "hello.txt",
		Body:   []byte("hello"),
	}

	b.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	first, err := b.NewRequest(context.Background(), d)
	require.NoError(t, err)

	b.now = func() time.Time { return time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC) }
	second, err := b.NewRequest(context.Background(), d)
	require.NoError(t, err)

	// Signature is time-variant, everything else deterministic.
	assert.NotEqual(t, first.Header.Get("Authorization"), second.Header.Get("Authorization"))
	assert.NotEqual(t, first.Header.Get("X-Amz-Date"), second.Header.Get("X-Amz-Date"))
	assert.Equal(t, first.URL.String(), second.URL.String())
	assert.Equal(t, first.Method, second.Method)
}

func TestNewRequest_SigningIsDeterministic(t *testing.T) {
	b := testBuilder(t, "http://localhost:9000", true)
	b.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	d := Descriptor{Method: http.MethodGet, Bucket: "docs", Key: "hello.txt"}

	first, err := b.NewRequest(context.Background(), d)
	require.NoError(t, err)
	second, err := b.NewRequest(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, first.Header.Get("Authorization"), second.Header.Get("Authorization"))
}

func TestNewRequest_Headers(t *testing.T) {
	b := testBuilder(t, "http://localhost:9000", true)

	header := http.Header{}
	header.Set("Content-Type", "text/plain")
	req, err := b.NewRequest(context.Background(), Descriptor{
		Method: http.MethodPut,
		Bucket: "docs",
		Key:    "hello.txt",
		Header: header,
		Body:   []byte("hello"),
	})
	require.NoError(t, err)

	assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	assert.NotEmpty(t, req.Header.Get("X-Amz-Content-Sha256"))
	assert.Contains(t, req.Header.Get("Authorization"), "AWS4-HMAC-SHA256")
	assert.Contains(t, req.Header.Get("Authorization"), "Credential=AKIDEXAMPLE/")
	assert.Equal(t, int64(5), req.ContentLength)
}

func TestNewRequest_SessionToken(t *testing.T) {
	creds := credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", "tok123")
	b := NewBuilder(mustParse(t, "http://localhost:9000"), "us-east-1", creds, true)

	req, err := b.NewRequest(context.Background(), Descriptor{Method: http.MethodGet, Bucket: "docs"})
	require.NoError(t, err)

	assert.Equal(t, "tok123", req.Header.Get("X-Amz-Security-Token"))
}
