package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vsxchangeza/backend/internal/models"
)

// AuthHandlersTestSuite covers registration, login and /me
type AuthHandlersTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *AuthHandlersTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *AuthHandlersTestSuite) TestRegisterSuccess() {
	t := suite.T()

	w := suite.env.request(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"firstName": "Thandi",
		"lastName":  "Nkosi",
		"email":     "Thandi@Example.com",
		"password":  "password123",
		"role":      "creative",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "thandi@example.com", body["email"], "email should be stored lowercase")
	assert.Equal(t, "Thandi", body["firstName"])
	assert.Equal(t, "creative", body["role"])
	assert.NotEmpty(t, body["token"])
	assert.NotZero(t, body["id"])

	// Password hash never appears in any response
	assert.NotContains(t, w.Body.String(), "password")
}

func (suite *AuthHandlersTestSuite) TestRegisterDefaultsRole() {
	t := suite.T()

	w := suite.env.request(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    uniqueEmail("norole"),
		"password": "password123",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "client", decode(t, w)["role"])
}

func (suite *AuthHandlersTestSuite) TestRegisterDuplicateEmailAnyCasing() {
	t := suite.T()

	first := suite.env.request(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "dup@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := suite.env.request(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "DUP@Example.COM",
		"password": "different456",
	})
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "DUPLICATE", decode(t, second)["code"])

	var count int64
	suite.env.db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func (suite *AuthHandlersTestSuite) TestRegisterRejectsMissingFields() {
	t := suite.T()

	for _, body := range []map[string]interface{}{
		{"password": "password123"},
		{"email": "x@example.com"},
		{"email": "not-an-email", "password": "password123"},
		{"email": "x@example.com", "password": "short"},
	} {
		w := suite.env.request(t, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION", decode(t, w)["code"])
	}
}

func (suite *AuthHandlersTestSuite) TestLoginSuccess() {
	t := suite.T()

	suite.env.createUser(t, "login@example.com")

	w := suite.env.request(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "Login@Example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "login@example.com", user["email"])
}

func (suite *AuthHandlersTestSuite) TestLoginFailureIsUniform() {
	t := suite.T()

	suite.env.createUser(t, "uniform@example.com")

	wrongPassword := suite.env.request(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "uniform@example.com",
		"password": "wrong-password",
	})
	unknownEmail := suite.env.request(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Identical bodies so a caller can't probe which emails exist
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func (suite *AuthHandlersTestSuite) TestMeRequiresToken() {
	t := suite.T()

	w := suite.env.request(t, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, w)["code"])
}

func (suite *AuthHandlersTestSuite) TestMeRejectsGarbageToken() {
	t := suite.T()

	for _, token := range []string{"garbage", "12345", "eyJhbGciOiJub25lIn0.e30."} {
		w := suite.env.request(t, http.MethodGet, "/api/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "token %q should be rejected", token)
	}
}

func (suite *AuthHandlersTestSuite) TestMeReturnsOwnProfile() {
	t := suite.T()

	user, token := suite.env.createUser(t, "me@example.com")

	w := suite.env.request(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, user.ID, body["id"])
	assert.Equal(t, "me@example.com", body["email"])
	// List fields serialize as arrays even when empty
	assert.Equal(t, []interface{}{}, body["skills"])
}

func TestAuthHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlersTestSuite))
}
