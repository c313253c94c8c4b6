package stubstore

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, server *httptest.Server, method, path, body string) (int, string) {
	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestMissingProductIsNullWithOKStatus(t *testing.T) {
	httphelpers.WithServer(New().Handler(), func(server *httptest.Server) {
		status, body := doRequest(t, server, "GET", "/products/999", "")
		assert.Equal(t, 200, status)
		assert.Equal(t, "null", body)
	})
}

func TestLogin(t *testing.T) {
	httphelpers.WithServer(New().Handler(), func(server *httptest.Server) {
		_, body := doRequest(t, server, "POST", "/auth/login", `{"username":"mor_2314","password":"83r5^_"}`)
		assert.Contains(t, body, `"token":`)

		_, body = doRequest(t, server, "POST", "/auth/login", `{"username":"mor_2314","password":"x"}`)
		assert.Equal(t, "null", body)

		status, _ := doRequest(t, server, "POST", "/auth/login", `not json`)
		assert.Equal(t, 400, status)
	})
}

func TestCategoryWithEscapedCharacters(t *testing.T) {
	httphelpers.WithServer(New().Handler(), func(server *httptest.Server) {
		status, body := doRequest(t, server, "GET", "/products/category/women%27s%20clothing", "")
		assert.Equal(t, 200, status)
		assert.Contains(t, body, `"id":15`)
		assert.Contains(t, body, `"id":18`)
		assert.NotContains(t, body, `"id":1,`)
	})
}

func TestCategoriesAreListedOnce(t *testing.T) {
	httphelpers.WithServer(New().Handler(), func(server *httptest.Server) {
		_, body := doRequest(t, server, "GET", "/products/categories", "")
		assert.JSONEq(t, `["men's clothing","jewelery","electronics","women's clothing"]`, body)
	})
}

func TestOverrideAndRecordedRequests(t *testing.T) {
	store := New()
	store.Override("GET", "/carts", httphelpers.HandlerWithStatus(503))
	httphelpers.WithServer(store.Handler(), func(server *httptest.Server) {
		status, _ := doRequest(t, server, "GET", "/carts", "")
		assert.Equal(t, 503, status)

		_, body := doRequest(t, server, "POST", "/carts", `{"userId":5,"date":"2024-01-01","products":[]}`)
		assert.Contains(t, body, `"id":3`)
	})

	requests := store.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "/carts", requests[0].Path)
	assert.Equal(t, "POST", requests[1].Method)
	assert.Equal(t, `{"userId":5,"date":"2024-01-01","products":[]}`, string(requests[1].Body))
}
