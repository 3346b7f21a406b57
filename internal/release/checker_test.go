package release

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/amehta/practik/releases/latest", r.URL.Path)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(releaseResponse{TagName: tag})
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	res, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	res, err := c.Check(context.Background(), "v1.2.0")
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)
}

func TestCheck_BareVersionNormalized(t *testing.T) {
	c := newTestChecker(t, "1.3.0", http.StatusOK)

	res, err := c.Check(context.Background(), "1.2.9")
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), "(devel)")
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_ServerError(t *testing.T) {
	c := newTestChecker(t, "", http.StatusServiceUnavailable)
	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}

func TestCheck_InvalidTag(t *testing.T) {
	c := newTestChecker(t, "nightly", http.StatusOK)
	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}
