package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRegister_CreatesUser(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("user@test.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(testUserID))
	mock.ExpectCommit()

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/register", handler.Register)

	resp := postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "User@Test.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "User created successfully", body["message"])
	// The stored email is normalised to lowercase.
	assert.Equal(t, "user@test.com", body["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("user@test.com", 1).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow(testUserID, "user@test.com"))

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/register", handler.Register)

	resp := postJSON(r, "/auth/register", map[string]string{
		"email":    "user@test.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_ShortPasswordIsRejected(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/register", handler.Register)

	resp := postJSON(r, "/auth/register", map[string]string{
		"email":    "user@test.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_IssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("user@test.com", 1).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow(testUserID, "user@test.com", string(passwordHash), "user"))

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/login", handler.Login)

	resp := postJSON(r, "/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.NotEmpty(t, body["token"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("user@test.com", 1).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow(testUserID, "user@test.com", string(passwordHash), "user"))

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/login", handler.Login)

	resp := postJSON(r, "/auth/login", map[string]string{
		"email":    "user@test.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_UnknownEmailIsUnauthorized(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs("nobody@test.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/login", handler.Login)

	resp := postJSON(r, "/auth/login", map[string]string{
		"email":    "nobody@test.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMe_ReturnsTheCallerProfile(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs(testUserID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "email", "role"}).
			AddRow(testUserID, "user@test.com", "user"))

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}, handler.Me)

	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "user@test.com", body["email"])
	// The password hash never leaves the server.
	assert.NotContains(t, body, "password")
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	handler := NewHandler(gormDB, "")
	r := testutils.SetupTestRouter()
	r.POST("/auth/logout", handler.Logout)

	resp := postJSON(r, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
}
