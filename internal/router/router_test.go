package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/provider"
	"github.com/dujiao-next/estore/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dialector, err := models.NewDialector("sqlite", fmt.Sprintf("file:router_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := config.Default()
	container, err := provider.NewContainer(cfg, db)
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return &testServer{t: t, engine: SetupRouter(cfg, container), db: db}
}

func (s *testServer) do(method, path, token string, body interface{}) apiResponse {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(s.t, http.StatusOK, w.Code)

	var resp apiResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) register(username string) string {
	s.t.Helper()
	resp := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "secret123",
		"password_confirm": "secret123",
	})
	require.Equal(s.t, 0, resp.StatusCode, resp.Msg)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(s.t, data.Token)
	return data.Token
}

func (s *testServer) seedProduct(slug, price string) models.Product {
	s.t.Helper()
	category := models.Category{Title: "Shoes", Slug: "shoes-" + slug, IsActive: true}
	require.NoError(s.t, s.db.Create(&category).Error)
	product := models.Product{
		CategoryID: category.ID,
		Title:      strings.ToUpper(slug),
		Slug:       slug,
		SKU:        "SKU-" + slug,
		Price:      models.MustMoney(price),
		IsActive:   true,
	}
	require.NoError(s.t, s.db.Create(&product).Error)
	return product
}

func TestCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.register("alice")
	shirt := s.seedProduct("shirt", "10.00")
	mug := s.seedProduct("mug", "2.50")

	resp := s.do(http.MethodPost, "/api/v1/cart/items", token, gin.H{"product_id": shirt.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	resp = s.do(http.MethodPost, "/api/v1/cart/items", token, gin.H{"product_id": shirt.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	resp = s.do(http.MethodPost, "/api/v1/cart/items", token, gin.H{"product_id": mug.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)

	resp = s.do(http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var cart struct {
		Total      string `json:"total"`
		GrandTotal string `json:"grand_total"`
		Items      []struct {
			ID       uint `json:"id"`
			Quantity int  `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	require.Len(t, cart.Items, 2)
	require.Equal(t, "22.50", cart.Total)
	require.Equal(t, "32.50", cart.GrandTotal)

	resp = s.do(http.MethodPost, "/api/v1/addresses", token, gin.H{
		"location":       "Home",
		"street_address": "1 Main St",
		"city":           "Springfield",
		"state":          "IL",
	})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var address struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &address))

	resp = s.do(http.MethodPost, "/api/v1/orders/checkout", token, gin.H{"address_id": address.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var orders []struct {
		Status   string `json:"status"`
		Quantity int    `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &orders))
	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Equal(t, "Pending", order.Status)
	}

	resp = s.do(http.MethodGet, "/api/v1/cart", token, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	require.Empty(t, cart.Items)
	require.Equal(t, "0.00", cart.Total)

	resp = s.do(http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	require.NoError(t, json.Unmarshal(resp.Data, &orders))
	require.Len(t, orders, 2)
}

func TestCartRequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, 401, resp.StatusCode)

	resp = s.do(http.MethodGet, "/api/v1/cart", "not-a-token", nil)
	require.Equal(t, 401, resp.StatusCode)
}

func TestCheckoutWithForeignAddressIsNotFound(t *testing.T) {
	s := newTestServer(t)
	alice := s.register("alice")
	bob := s.register("bob")
	product := s.seedProduct("hat", "5.00")

	resp := s.do(http.MethodPost, "/api/v1/addresses", bob, gin.H{
		"location":       "Office",
		"street_address": "2 Side St",
		"city":           "Shelbyville",
		"state":          "IL",
	})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var address struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &address))

	resp = s.do(http.MethodPost, "/api/v1/cart/items", alice, gin.H{"product_id": product.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)

	resp = s.do(http.MethodPost, "/api/v1/orders/checkout", alice, gin.H{"address_id": address.ID})
	require.Equal(t, 404, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.CartItem{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDecrementRemovesLineAndUnknownLineIsNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.register("carol")
	product := s.seedProduct("sock", "1.00")

	resp := s.do(http.MethodPost, "/api/v1/cart/items", token, gin.H{"product_id": product.ID})
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var item struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &item))

	resp = s.do(http.MethodPost, fmt.Sprintf("/api/v1/cart/items/%d/decrement", item.ID), token, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var result struct {
		Removed bool `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.True(t, result.Removed)

	resp = s.do(http.MethodPost, fmt.Sprintf("/api/v1/cart/items/%d/increment", item.ID), token, nil)
	require.Equal(t, 404, resp.StatusCode)

	resp = s.do(http.MethodPost, "/api/v1/cart/items", token, gin.H{"product_id": 9999})
	require.Equal(t, 404, resp.StatusCode)
}

func TestRegisterValidationMessage(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":         "dave",
		"email":            "dave@example.com",
		"password":         "secret123",
		"password_confirm": "secret124",
	})
	require.Equal(t, 400, resp.StatusCode)
	require.NotEmpty(t, resp.Msg)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodGet, "/api/v1/admin/orders", "", nil)
	require.Equal(t, 401, resp.StatusCode)

	resp = s.do(http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
}

func (s *testServer) adminToken(username string, super bool) string {
	s.t.Helper()
	_, err := seed.Admin(s.db, username, "admin-pass-1", super)
	require.NoError(s.t, err)
	resp := s.do(http.MethodPost, "/api/v1/admin/login", "", gin.H{"username": username, "password": "admin-pass-1"})
	require.Equal(s.t, 0, resp.StatusCode, resp.Msg)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &data))
	return data.Token
}

func TestAdminUserManagement(t *testing.T) {
	s := newTestServer(t)
	customer := s.register("carol")
	rootToken := s.adminToken("root", true)

	resp := s.do(http.MethodGet, "/api/v1/admin/users?keyword=car", rootToken, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var users []models.User
	require.NoError(t, json.Unmarshal(resp.Data, &users))
	require.Len(t, users, 1)

	viewerToken := s.adminToken("viewer", false)
	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", users[0].ID), viewerToken, nil)
	require.Equal(t, 403, resp.StatusCode)

	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", users[0].ID), rootToken, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", users[0].ID), rootToken, nil)
	require.Equal(t, 404, resp.StatusCode)

	resp = s.do(http.MethodGet, "/api/v1/cart", customer, nil)
	require.Equal(t, 401, resp.StatusCode)
}
