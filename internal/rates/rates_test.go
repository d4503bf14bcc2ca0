package rates

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	calls int
	rate  float64
	err   error
}

func (f *fakeSource) Rate(ctx context.Context, code string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

func TestCacheRate(t *testing.T) {
	t.Run("Hit within TTL", func(t *testing.T) {
		src := &fakeSource{rate: 90}
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		cache := NewCache(src, 5*time.Minute, func() time.Time { return now })

		rate, err := cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)
		assert.Equal(t, 90.0, rate)

		now = now.Add(4 * time.Minute)
		rate, err = cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)
		assert.Equal(t, 90.0, rate)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("Expired entry refetches", func(t *testing.T) {
		src := &fakeSource{rate: 90}
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		cache := NewCache(src, 5*time.Minute, func() time.Time { return now })

		_, err := cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)

		now = now.Add(6 * time.Minute)
		src.rate = 95
		rate, err := cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)
		assert.Equal(t, 95.0, rate)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("Codes are cached independently", func(t *testing.T) {
		src := &fakeSource{rate: 90}
		now := time.Now()
		cache := NewCache(src, 5*time.Minute, func() time.Time { return now })

		_, err := cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)
		_, err = cache.Rate(context.Background(), "EUR")
		assert.NoError(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("Source error is not cached", func(t *testing.T) {
		src := &fakeSource{err: errors.New("rates down")}
		cache := NewCache(src, 5*time.Minute, time.Now)

		_, err := cache.Rate(context.Background(), "USD")
		assert.Error(t, err)

		src.err = nil
		src.rate = 88
		rate, err := cache.Rate(context.Background(), "USD")
		assert.NoError(t, err)
		assert.Equal(t, 88.0, rate)
	})
}

type fakeHTTPClient struct {
	statusCode int
	body       []byte
	err        error
	lastURL    string
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) { return nil, nil }

func (f *fakeHTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	f.lastURL = url
	return f.statusCode, f.body, nil, f.err
}

func (f *fakeHTTPClient) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	return 0, nil, nil
}

func TestClientRate(t *testing.T) {
	tests := []struct {
		name         string
		client       *fakeHTTPClient
		expectedRate float64
		expectError  bool
	}{
		{
			name:         "Successful lookup",
			client:       &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"code":"USD","rate":90.5}`)},
			expectedRate: 90.5,
		},
		{
			name:        "Transport error",
			client:      &fakeHTTPClient{err: errors.New("connection refused")},
			expectError: true,
		},
		{
			name:        "Non-200 status",
			client:      &fakeHTTPClient{statusCode: http.StatusNotFound, body: []byte(`{}`)},
			expectError: true,
		},
		{
			name:        "Malformed body",
			client:      &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`not-json`)},
			expectError: true,
		},
		{
			name:        "Non-positive rate",
			client:      &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"code":"USD","rate":0}`)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("http://localhost:8081", tt.client)

			rate, err := client.Rate(context.Background(), "USD")
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRate, rate)
				assert.Equal(t, "http://localhost:8081/api/rates/USD", tt.client.lastURL)
			}
		})
	}
}
