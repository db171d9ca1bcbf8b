package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedVersionsResponse(t *testing.T) {
	before := time.Now()
	resp := NewFixedVersionsResponse("openssl", []string{"1.0", "2.1"})

	assert.Equal(t, "openssl", resp.Name)
	assert.Equal(t, []string{"1.0", "2.1"}, resp.Versions)

	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))
}

func TestNewQuery(t *testing.T) {
	q := NewQuery("openssl", "Ubuntu")
	assert.Equal(t, "openssl", q.Package.Name)
	assert.Equal(t, "Ubuntu", q.Package.Ecosystem)
	assert.Empty(t, q.Commit)
	assert.Empty(t, q.Version)
	assert.Empty(t, q.PageToken)
}
