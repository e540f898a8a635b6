package mlservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ml-classroom-service/internal/config"
	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/pkg/urlchecker"
)

func newCreds(url string) *domain.Credentials {
	return &domain.Credentials{ID: uuid.New(), URL: url, Username: "user", Password: "pass"}
}

func TestProbe_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "pass" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(&config.MLServiceConfig{Timeout: time.Second})
	res, err := c.Probe(context.Background(), newCreds(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProbe_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(&config.MLServiceConfig{})
	_, err := c.Probe(context.Background(), newCreds(srv.URL))
	assert.ErrorIs(t, err, domain.ErrCredentialsRejected)
}

func TestProbe_UnsupportedScheme(t *testing.T) {
	c := NewClient(&config.MLServiceConfig{})
	_, err := c.Probe(context.Background(), newCreds("ftp://ml.example.org"))
	assert.ErrorIs(t, err, urlchecker.ErrUnsupportedScheme)
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(&config.MLServiceConfig{Timeout: time.Second})
	_, err := c.Probe(context.Background(), newCreds(url))
	assert.ErrorIs(t, err, domain.ErrServiceUnreachable)
}

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/classifiers/clf-1/classify", r.URL.Path)

		var req classifyRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"classes":[{"class_name":"happy","confidence":0.874},{"class_name":"sad","confidence":0.126}]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.MLServiceConfig{Enabled: true})
	results, err := c.Classify(context.Background(), newCreds(srv.URL), "clf-1", "hello")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.Classification{ClassName: "happy", Confidence: 87}, results[0])
	assert.Equal(t, 13, results[1].Confidence)
}

func TestClassify_Disabled(t *testing.T) {
	c := NewClient(&config.MLServiceConfig{Enabled: false})
	assert.False(t, c.IsAvailable())

	_, err := c.Classify(context.Background(), newCreds("https://ml.example.org"), "clf", "x")
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
}

func TestClassify_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(&config.MLServiceConfig{Enabled: true})
	_, err := c.Classify(context.Background(), newCreds(srv.URL), "gone", "x")
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
}
