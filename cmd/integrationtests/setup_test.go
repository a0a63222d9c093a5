package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	"github.com/YoshiBoneDoc/kolauction/internal/kvstore"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/repository"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
	"github.com/YoshiBoneDoc/kolauction/internal/server"
	"github.com/YoshiBoneDoc/kolauction/internal/userstore"
	"github.com/YoshiBoneDoc/kolauction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with in-memory stores for integration testing.
func SetupTestRouter(seed ...model.Auction) (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)

	users := userstore.New(kvstore.NewMemory())
	store := repository.NewMemoryStore()
	for _, a := range seed {
		if err := store.Add(a); err != nil {
			panic(err)
		}
	}

	service := auction.NewAuctionService(store, users, rules.DefaultPolicy())
	return server.SetupRouter(service, users), store
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// RegisterAndLogin creates the account (if new) and signs the user in,
// making them the session user for subsequent requests.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username, password string) {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register",
		helpers.RegisterRequest{Username: username, Password: password})
	if w.Code != http.StatusCreated && w.Code != http.StatusConflict {
		t.Fatalf("unexpected register status for %s: %d", username, w.Code)
	}

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login",
		helpers.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code)
}
