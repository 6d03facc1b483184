package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	s3errors "github.com/quillstack/s3kit/errors"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{name: "valid simple name", bucket: "my-bucket", wantErr: false},
		{name: "valid with dots", bucket: "my.bucket.backups", wantErr: false},
		{name: "valid with numbers", bucket: "bucket-123", wantErr: false},
		{name: "minimum length", bucket: "abc", wantErr: false},
		{name: "empty", bucket: "", wantErr: true},
		{name: "too short", bucket: "ab", wantErr: true},
		{name: "too long", bucket: strings.Repeat("a", 64), wantErr: true},
		{name: "uppercase", bucket: "MyBucket", wantErr: true},
		{name: "underscore", bucket: "my_bucket", wantErr: true},
		{name: "leading hyphen", bucket: "-bucket", wantErr: true},
		{name: "trailing dot", bucket: "bucket.", wantErr: true},
		{name: "ip address shaped", bucket: "192.168.1.1", wantErr: true},
		{name: "consecutive dots", bucket: "my..bucket", wantErr: true},
		{name: "dot hyphen sequence", bucket: "my.-bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBucketName(tt.bucket)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, s3errors.ErrInvalidBucketName))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "valid simple key", key: "file.txt", wantErr: false},
		{name: "valid nested key", key: "docs/2024/report.pdf", wantErr: false},
		{name: "valid with spaces", key: "my file.txt", wantErr: false},
		{name: "valid unicode", key: "résumé.pdf", wantErr: false},
		{name: "empty", key: "", wantErr: true},
		{name: "too long", key: strings.Repeat("k", 1025), wantErr: true},
		{name: "newline", key: "file\n.txt", wantErr: true},
		{name: "null byte", key: "file\x00.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjectKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, s3errors.ErrInvalidObjectKey))
				return
			}
			assert.NoError(t, err)
		})
	}
}
