package fetch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocalRefs(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"plain path", "decks/talk.pdf", "decks/talk.pdf"},
		{"file scheme", "file:///tmp/talk.pdf", "/tmp/talk.pdf"},
		{"fragment stripped", "talk.pdf#page=2", "talk.pdf"},
		{"file scheme with fragment", "file:///tmp/talk.pdf#3", "/tmp/talk.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, tmp, err := Resolve(context.Background(), tt.ref)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, local)
			assert.Empty(t, tmp, "local refs must not create temp files")
		})
	}
}

func TestSplitS3URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		bucket  string
		key     string
		wantErr bool
	}{
		{"bucket and key", "s3://decks/2024/talk.pdf", "decks", "2024/talk.pdf", false},
		{"missing key", "s3://decks", "", "", true},
		{"trailing slash only", "s3://decks/", "", "", true},
		{"empty bucket", "s3:///talk.pdf", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitS3URL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
