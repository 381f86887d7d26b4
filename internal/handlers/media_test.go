package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MediaTestSuite covers the standalone upload endpoint
type MediaTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *MediaTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *MediaTestSuite) upload(token, filename string, content []byte) *httptest.ResponseRecorder {
	t := suite.T()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.env.router.ServeHTTP(w, req)
	return w
}

func (suite *MediaTestSuite) TestUploadStoresFileAndReturnsURL() {
	t := suite.T()

	_, token := suite.env.createUser(t, "uploader@example.com")

	content := []byte("fake png bytes")
	w := suite.upload(token, "portrait.png", content)

	require.Equal(t, http.StatusCreated, w.Code)
	url, ok := decode(t, w)["url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "/uploads/"))

	// The bytes land on disk before the response goes out
	name := strings.TrimPrefix(url, "/uploads/")
	stored, err := os.ReadFile(filepath.Join(suite.env.store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func (suite *MediaTestSuite) TestUploadRandomizesName() {
	t := suite.T()

	_, token := suite.env.createUser(t, "names@example.com")

	first := decode(t, suite.upload(token, "same.png", []byte("a")))["url"].(string)
	second := decode(t, suite.upload(token, "same.png", []byte("b")))["url"].(string)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "same")
}

func (suite *MediaTestSuite) TestUploadUppercaseExtensionAllowed() {
	t := suite.T()

	_, token := suite.env.createUser(t, "caps@example.com")

	w := suite.upload(token, "CLIP.MP4", []byte("video"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasSuffix(decode(t, w)["url"].(string), ".mp4"))
}

func (suite *MediaTestSuite) TestUploadRejectsDisallowedExtension() {
	t := suite.T()

	_, token := suite.env.createUser(t, "rejected@example.com")

	for _, filename := range []string{"script.exe", "notes.txt", "archive.tar.gz", "noextension"} {
		w := suite.upload(token, filename, []byte("x"))
		assert.Equal(t, http.StatusBadRequest, w.Code, "filename %q should be rejected", filename)
		assert.Equal(t, "BAD_FILE", decode(t, w)["code"])
	}
}

func (suite *MediaTestSuite) TestUploadRequiresAuth() {
	t := suite.T()

	w := suite.upload("", "portrait.png", []byte("x"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func (suite *MediaTestSuite) TestUploadWithoutFile() {
	t := suite.T()

	_, token := suite.env.createUser(t, "nofile@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_FILE", decode(t, w)["code"])
}

func TestMediaTestSuite(t *testing.T) {
	suite.Run(t, new(MediaTestSuite))
}
