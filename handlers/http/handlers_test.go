package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartcampus-server/db"
	"smartcampus-server/repositories"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret     = "test-secret"
	testAdminEmail = "admin@example.com"
)

type testEnv struct {
	router  *gin.Engine
	sensors repositories.SensorRepository
	users   repositories.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:http_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database := &db.GormDatabase{DB: gormDB}

	userRepo := repositories.NewUserPgRepository(database)
	sensorRepo := repositories.NewSensorPgRepository(database)
	sensorUseCase := usecases.NewSensorUseCase(sensorRepo, true)

	hub := ws.NewHub()
	authHandler := NewAuthHandler(userRepo, testSecret)
	sensorHandler := NewSensorHandler(sensorUseCase, hub, testAdminEmail)

	router := gin.New()
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)
	router.GET("/api/auth/me", AuthRequired(testSecret), authHandler.Me)
	router.GET("/api/sensors", sensorHandler.GetAllSensors)
	router.POST("/api/sensors", AuthRequired(testSecret), sensorHandler.CreateSensor)
	router.PUT("/api/sensors/:id", OptionalAuth(testSecret), sensorHandler.UpdateSensor)

	return &testEnv{router: router, sensors: sensorRepo, users: userRepo}
}

func makeToken(t *testing.T, email, role string) string {
	t.Helper()
	claims := Claims{
		UserID: "u-" + role,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
