package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dalal-market/internal/app"
	"dalal-market/internal/config"
	"dalal-market/internal/models"
	"dalal-market/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	adminPassword = "admin-password"
	userPassword  = "sample-password"
)

// testMarket is the whole application over the in-memory store with the sample data loaded
type testMarket struct {
	t      *testing.T
	market *app.App
	router *gin.Engine
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:   "test",
		HTTP:  config.HTTPConfig{Port: "0", ShutdownTimeout: time.Second, IdempotencyTTL: time.Hour},
		Log:   config.LogConfig{Level: "error"},
		Store: config.StoreConfig{Driver: config.StoreMemory},
		Redis: config.RedisConfig{CacheTTL: time.Minute},
		Media: config.MediaConfig{
			Driver:    config.MediaLocal,
			Root:      t.TempDir(),
			BaseURL:   "/media",
			MaxUpload: 1 << 20,
		},
		Auth:          config.AuthConfig{JWTSecret: "integration-secret", TokenTTL: time.Hour},
		Auction:       config.AuctionConfig{SweepInterval: time.Minute},
		Notifications: config.NotificationsConfig{MaxAttempts: 1},
	}
}

// SetupTestMarket wires the application and seeds it
func SetupTestMarket(t *testing.T) *testMarket {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	market, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		require.NoError(t, market.Close())
	})

	seeder := seed.New(market.Store, market.Services.Accounts, market.Services.Catalog, market.Services.Locations)
	_, err = seeder.Run(ctx, seed.Options{AdminPassword: adminPassword, SamplePassword: userPassword})
	require.NoError(t, err)

	return &testMarket{t: t, market: market, router: market.Router()}
}

// Login returns a bearer token for username
func (m *testMarket) Login(username, password string) string {
	m.t.Helper()
	resp, w := m.Do(http.MethodPost, "/auth/login", "", map[string]any{"login": username, "password": password})
	require.Equal(m.t, http.StatusOK, w.Code, w.Body.String())
	return resp["data"].(map[string]any)["token"].(string)
}

func (m *testMarket) User(username string) models.User {
	m.t.Helper()
	user, err := m.market.Store.GetUserByLogin(context.Background(), username)
	require.NoError(m.t, err)
	return user
}

// SellerListing returns one of seller1's sample listings by title
func (m *testMarket) SellerListing(title string) models.Listing {
	m.t.Helper()
	listings, err := m.market.Store.SearchListings(context.Background(), models.ListingFilter{SellerID: m.User("seller1").UserID})
	require.NoError(m.t, err)
	for _, l := range listings {
		if l.Title == title {
			return l
		}
	}
	m.t.Fatalf("listing %q not seeded", title)
	return models.Listing{}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func (m *testMarket) ExecuteRequest(method, url, token string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

// Do executes a JSON request and parses the response envelope
func (m *testMarket) Do(method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	return m.DoWithHeaders(method, url, token, body, nil)
}

func (m *testMarket) DoWithHeaders(method, url, token string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	m.t.Helper()
	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(m.t, err)
	}

	w := m.ExecuteRequest(method, url, token, reqBody, headers)
	var resp map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(m.t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

func data(resp map[string]any) map[string]any {
	return resp["data"].(map[string]any)
}

func dataList(resp map[string]any) []any {
	return resp["data"].([]any)
}
