// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/disfrutatv/dtv/internal/models"
)

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	MoviesFn func(ctx context.Context, page int) ([]models.Movie, error)
	SeriesFn func(ctx context.Context, page int) ([]models.Series, error)
}

func (m *MockCatalog) Movies(ctx context.Context, page int) ([]models.Movie, error) {
	if m.MoviesFn != nil {
		return m.MoviesFn(ctx, page)
	}
	return []models.Movie{}, nil
}

func (m *MockCatalog) Series(ctx context.Context, page int) ([]models.Series, error) {
	if m.SeriesFn != nil {
		return m.SeriesFn(ctx, page)
	}
	return []models.Series{}, nil
}

// MemoryCredentials is an in-memory test double for [session.CredentialStore]
type MemoryCredentials struct {
	mu       sync.Mutex
	token    string
	TokenErr error
	SaveErr  error
	ClearErr error
	Clears   int
}

func NewMemoryCredentials(token string) *MemoryCredentials {
	return &MemoryCredentials{token: token}
}

func (m *MemoryCredentials) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TokenErr != nil {
		return "", m.TokenErr
	}
	return m.token, nil
}

func (m *MemoryCredentials) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.token = token
	return nil
}

func (m *MemoryCredentials) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token = ""
	m.Clears++
	return nil
}

// SignToken builds an HS256 token carrying the given claims. Decoding
// never verifies signatures, so the signing key is arbitrary.
func SignToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
