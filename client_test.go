package s3kit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s3errors "github.com/quillstack/s3kit/errors"
	"github.com/quillstack/s3kit/s3types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []s3types.Option
		wantErr bool
	}{
		{
			name: "valid configuration",
			opts: []s3types.Option{
				WithEndpoint("http://localhost:9000"),
				WithCredentials("minioadmin", "minioadmin"),
				WithPathStyle(true),
			},
			wantErr: false,
		},
		{
			name: "valid with all options",
			opts: []s3types.Option{
				WithEndpoint("https://s3.eu-west-1.example.com"),
				WithCredentials("key", "secret"),
				WithSessionToken("token"),
				WithRegion("eu-west-1"),
				WithTimeout(5 * time.Second),
			},
			wantErr: false,
		},
		{
			name: "missing endpoint",
			opts: []s3types.Option{
				WithCredentials("key", "secret"),
			},
			wantErr: true,
		},
		{
			name: "relative endpoint",
			opts: []s3types.Option{
				WithEndpoint("localhost:9000"),
				WithCredentials("key", "secret"),
			},
			wantErr: true,
		},
		{
			name: "endpoint without host",
			opts: []s3types.Option{
				WithEndpoint("http://"),
				WithCredentials("key", "secret"),
			},
			wantErr: true,
		},
		{
			name: "missing credentials",
			opts: []s3types.Option{
				WithEndpoint("http://localhost:9000"),
			},
			wantErr: true,
		},
		{
			name: "missing secret",
			opts: []s3types.Option{
				WithEndpoint("http://localhost:9000"),
				WithCredentials("key", ""),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.True(t, errors.Is(err, s3errors.ErrInvalidConfig))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

func TestClient_Bucket(t *testing.T) {
	client, err := New(
		WithEndpoint("http://localhost:9000"),
		WithCredentials("key", "secret"),
		WithPathStyle(true),
	)
	require.NoError(t, err)

	t.Run("valid name", func(t *testing.T) {
		bucket, err := client.Bucket("my-bucket")
		require.NoError(t, err)
		assert.Equal(t, "my-bucket", bucket.Name())
	})

	t.Run("invalid name fails at handle creation", func(t *testing.T) {
		bucket, err := client.Bucket("Not_A_Valid_Name")
		require.Error(t, err)
		assert.Nil(t, bucket)
		assert.True(t, errors.Is(err, s3errors.ErrInvalidBucketName))
	})
}
