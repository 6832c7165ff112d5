package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func commentRouter(userID string) *gin.Engine {
	router := gin.New()
	router.GET("/comments/post/:postId", GetActiveCommentsByPost)
	router.GET("/comments/post/:postId/page/:pageNo/size/:pageSize", GetActiveCommentsByPostAndPage)
	router.GET("/comments/:commentId", GetCommentByID)
	router.POST("/comments", asUser(userID), AddComment)
	router.PUT("/comments/:commentId", asUser(userID), EditComment)
	router.DELETE("/comments/:commentId", asUser(userID), SoftDeleteComment)
	router.POST("/comments/:commentId/like", asUser(userID), LikeComment)
	router.POST("/comments/:commentId/dislike", asUser(userID), DislikeComment)
	return router
}

func TestAddComment(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "commenter-one")
	subject := seedSubject(t, "CS2103T", "Software Engineering")
	post := seedPost(t, user, subject)
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodPost, "/comments", gin.H{
		"basePost": post.ID,
		"body":     "team project is the whole grade",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	// Commenter defaults to the authenticated caller
	assert.Equal(t, user.ID, body["commenter"])
	assert.Equal(t, post.ID, body["basePost"])
}

func TestAddComment_DanglingPost(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "commenter-two")
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodPost, "/comments", gin.H{
		"basePost": uuid.New().String(),
		"body":     "into the void",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Invalid ID", decodeBody(t, w)["message"])
}

func TestAddComment_MissingFields(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "commenter-three")
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodPost, "/comments", gin.H{"body": "no post"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetActiveCommentsByPost_ShapesCommenter(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "shaped-name")
	subject := seedSubject(t, "CS2105", "Computer Networks")
	post := seedPost(t, user, subject)
	seedComment(t, post, user)
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodGet, "/comments/post/"+post.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"displayName":"shaped-name"`)
	// Only the display name leaks, never the email
	assert.NotContains(t, w.Body.String(), "shaped-name@example.com")
}

func TestGetActiveCommentsByPostAndPage_NormalizesBadValues(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "paginator")
	subject := seedSubject(t, "CS3230", "Design and Analysis of Algorithms")
	post := seedPost(t, user, subject)
	for i := 0; i < 12; i++ {
		seedComment(t, post, user)
	}
	router := commentRouter(user.ID)

	// page 0 / size 0 in the path behaves as page 1 / size 10
	w := performRequest(router, http.MethodGet, "/comments/post/"+post.ID+"/page/0/size/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, strings.Count(w.Body.String(), `"basePost"`))

	w = performRequest(router, http.MethodGet, "/comments/post/"+post.ID+"/page/2/size/10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `"basePost"`))
}

func TestEditComment_OwnerOnly(t *testing.T) {
	setupTest(t)
	owner := seedUser(t, "comment-owner")
	stranger := seedUser(t, "comment-stranger")
	subject := seedSubject(t, "CS2102", "Database Systems")
	post := seedPost(t, owner, subject)
	comment := seedComment(t, post, owner)

	w := performRequest(commentRouter(stranger.ID), http.MethodPut, "/comments/"+comment.ID,
		gin.H{"body": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(commentRouter(owner.ID), http.MethodPut, "/comments/"+comment.ID,
		gin.H{"body": "updated by owner"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "updated by owner")
}

func TestSoftDeleteComment_Handler(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "comment-deleter")
	subject := seedSubject(t, "CS2100", "Computer Organisation")
	post := seedPost(t, user, subject)
	comment := seedComment(t, post, user)
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodDelete, "/comments/"+comment.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deactivated comments drop out of the post listing
	w = performRequest(router, http.MethodGet, "/comments/post/"+post.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = performRequest(router, http.MethodDelete, "/comments/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeComment_RejectsNonComments(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "comment-liker")
	subject := seedSubject(t, "CS2106", "Operating Systems")
	post := seedPost(t, user, subject)
	comment := seedComment(t, post, user)
	router := commentRouter(user.ID)

	w := performRequest(router, http.MethodPost, "/comments/"+comment.ID+"/like", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// A post id on the comment surface is not a valid target
	w = performRequest(router, http.MethodPost, "/comments/"+post.ID+"/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Comment not found", decodeBody(t, w)["message"])

	w = performRequest(router, http.MethodPost, "/comments/garbage/dislike", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Invalid ID format", decodeBody(t, w)["message"])
}

func TestImportCommentsCSV_Handler(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "csv-admin")
	subject := seedSubject(t, "IS1103", "Ethics in Computing")
	post := seedPost(t, user, subject)

	csvBody := "base_post,commenter,body\n" +
		post.ID + "," + user.ID + ",bids are low\n" +
		uuid.New().String() + "," + user.ID + ",dangling post\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("csvFile", "comments.csv")
	assert.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	router := gin.New()
	router.POST("/comments/csv/import", asUser(user.ID), ImportCommentsCSV)

	req := httptest.NewRequest(http.MethodPost, "/comments/csv/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Total_Records":2`)
	assert.Contains(t, w.Body.String(), `"Records_inserted":1`)
	assert.Contains(t, w.Body.String(), `"Records_error":1`)
}

func TestExportCommentsCSV_Handler(t *testing.T) {
	setupTest(t)
	user := seedUser(t, "csv-exporter")
	subject := seedSubject(t, "GEQ1000", "Asking Questions")
	post := seedPost(t, user, subject)
	comment := seedComment(t, post, user)

	router := gin.New()
	router.GET("/comments/csv/export", ExportCommentsCSV)

	w := performRequest(router, http.MethodGet, "/comments/csv/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename=mod-checkup-comments.csv`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), comment.ID)
}
