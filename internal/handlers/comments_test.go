package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vsxchangeza/backend/internal/models"
)

// CommentsTestSuite covers listing and creating comments
type CommentsTestSuite struct {
	suite.Suite
	env  *testEnv
	post models.Post
}

func (suite *CommentsTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())

	user, _ := suite.env.createUser(suite.T(), "author@example.com")
	suite.post = models.Post{UserID: user.ID, Text: "discuss"}
	require.NoError(suite.T(), suite.env.db.Create(&suite.post).Error)
}

func (suite *CommentsTestSuite) TestListCommentsOldestFirst() {
	t := suite.T()

	user, _ := suite.env.createUser(t, "commenter@example.com")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		comment := models.Comment{
			PostID:    suite.post.ID,
			UserID:    user.ID,
			Text:      fmt.Sprintf("comment %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, suite.env.db.Create(&comment).Error)
	}

	w := suite.env.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", suite.post.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 0", comments[0]["text"])
	assert.Equal(t, "comment 2", comments[2]["text"])
}

func (suite *CommentsTestSuite) TestListCommentsEmptyPost() {
	t := suite.T()

	w := suite.env.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", suite.post.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func (suite *CommentsTestSuite) TestListCommentsMissingPost() {
	t := suite.T()

	w := suite.env.request(t, http.MethodGet, "/api/posts/99999/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *CommentsTestSuite) TestCreateComment() {
	t := suite.T()

	user, token := suite.env.createUser(t, "replier@example.com")

	w := suite.env.request(t, http.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", suite.post.ID), token,
		map[string]interface{}{"text": "  nice work  "})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "nice work", body["text"], "text is trimmed before storage")
	assert.EqualValues(t, suite.post.ID, body["post_id"])

	author := body["user"].(map[string]interface{})
	assert.EqualValues(t, user.ID, author["id"])
}

func (suite *CommentsTestSuite) TestCreateCommentRejectsBlank() {
	t := suite.T()

	_, token := suite.env.createUser(t, "blank@example.com")

	for _, text := range []string{"", "   ", "\n\t"} {
		w := suite.env.request(t, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/comments", suite.post.ID), token,
			map[string]interface{}{"text": text})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION", decode(t, w)["code"])
	}
}

func (suite *CommentsTestSuite) TestCreateCommentMissingPost() {
	t := suite.T()

	_, token := suite.env.createUser(t, "lost@example.com")

	w := suite.env.request(t, http.MethodPost, "/api/posts/99999/comments", token,
		map[string]interface{}{"text": "into the void"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *CommentsTestSuite) TestCreateCommentRequiresAuth() {
	t := suite.T()

	w := suite.env.request(t, http.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", suite.post.ID), "",
		map[string]interface{}{"text": "anonymous"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommentsTestSuite(t *testing.T) {
	suite.Run(t, new(CommentsTestSuite))
}
