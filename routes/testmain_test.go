package routes_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"github.com/mishti/sweetshop-api/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	server *httptest.Server
	client *resty.Client
)

// apiResponse mirrors the response envelope used by every handler.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Sweet{}, &models.Order{}, &models.OrderItem{}); err != nil {
		panic(err)
	}
	initializers.DB = db

	engine := gin.New()
	routes.DefaultRoutes(engine)
	routes.AuthRoutes(engine)
	routes.SweetRoutes(engine)
	routes.OrderRoutes(engine)

	server = httptest.NewServer(engine)
	client = resty.New().SetBaseURL(server.URL)

	code := m.Run()
	server.Close()
	os.Exit(code)
}

func resetDatabase(t *testing.T) {
	t.Helper()
	for _, model := range []any{&models.OrderItem{}, &models.Order{}, &models.Sweet{}, &models.User{}} {
		require.NoError(t, initializers.DB.Unscoped().Where("1 = 1").Delete(model).Error)
	}
}

// doRequest performs an authenticated JSON request and decodes the envelope.
func doRequest(t *testing.T, method, path, token string, body any) (*resty.Response, apiResponse) {
	t.Helper()
	request := client.R()
	if token != "" {
		request.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		request.SetBody(body)
	}
	resp, err := request.Execute(method, path)
	require.NoError(t, err)

	var envelope apiResponse
	if len(resp.Body()) > 0 {
		require.NoError(t, json.Unmarshal(resp.Body(), &envelope))
	}
	return resp, envelope
}

func decodeData[T any](t *testing.T, envelope apiResponse) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(envelope.Data, &value))
	return value
}

func registerUser(t *testing.T, name, email string, role models.Role) string {
	t.Helper()
	payload := map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
	}
	if role != "" {
		payload["role"] = role
	}
	resp, envelope := doRequest(t, "POST", "/api/auth/register", "", payload)
	require.Equal(t, 201, resp.StatusCode())
	require.NotEmpty(t, envelope.Token)
	return envelope.Token
}

func createSweet(t *testing.T, token, name, category string, price float64, quantity int) models.Sweet {
	t.Helper()
	resp, envelope := doRequest(t, "POST", "/api/sweets", token, map[string]any{
		"name":     name,
		"category": category,
		"price":    price,
		"quantity": quantity,
	})
	require.Equal(t, 201, resp.StatusCode())
	return decodeData[models.Sweet](t, envelope)
}

func fetchSweet(t *testing.T, id uint) models.Sweet {
	t.Helper()
	var sweet models.Sweet
	require.NoError(t, initializers.DB.First(&sweet, id).Error)
	return sweet
}

func fetchOrder(t *testing.T, id uint) models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, initializers.DB.Preload("Items").First(&order, id).Error)
	return order
}

func sweetPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/sweets/%d%s", id, suffix)
}

func orderPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/orders/%d%s", id, suffix)
}
