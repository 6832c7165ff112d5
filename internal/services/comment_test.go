package services

import (
	"testing"

	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"in range", 3, 25, 3, 25},
		{"zero page", 0, 25, 1, 25},
		{"negative page", -2, 25, 1, 25},
		{"zero page size", 3, 0, 3, 10},
		{"negative page size", 3, -1, 3, 10},
		{"both out of range", 0, 0, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, pageSize := NormalizePage(tc.page, tc.pageSize)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPS, pageSize)
		})
	}
}

func TestCreateComment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "writer")
	post := createTestPost(t, db, user)

	comment := models.Comment{
		PostID:      post.ID,
		CommenterID: user.ID,
		Body:        "  lecturer replies fast on the forum  ",
	}
	err := CreateComment(db, &comment)

	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.True(t, comment.Active)
	assert.Equal(t, "lecturer replies fast on the forum", comment.Body)
}

func TestCreateComment_DanglingReferences(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "dangler")
	post := createTestPost(t, db, user)

	cases := []struct {
		name        string
		commenterID string
		postID      string
		body        string
	}{
		{"malformed commenter id", "nope", post.ID, "x"},
		{"malformed post id", user.ID, "nope", "x"},
		{"absent commenter", uuid.New().String(), post.ID, "x"},
		{"absent post", user.ID, uuid.New().String(), "x"},
		{"empty body", user.ID, post.ID, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comment := models.Comment{PostID: tc.postID, CommenterID: tc.commenterID, Body: tc.body}
			err := CreateComment(db, &comment)
			assert.Error(t, err)
			assert.Empty(t, comment.ID)
		})
	}
}

func TestListActiveComments(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "lister")
	post := createTestPost(t, db, user)

	for i := 0; i < 15; i++ {
		createTestComment(t, db, post, user)
	}
	hidden := createTestComment(t, db, post, user)
	_, err := SoftDeleteComment(db, hidden.ID)
	assert.NoError(t, err)

	// Unpaginated: everything active, the soft-deleted one excluded
	all, err := ListActiveComments(db, post.ID, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 15)
	for _, c := range all {
		assert.NotEqual(t, hidden.ID, c.ID)
		assert.True(t, c.Active)
	}

	// Page 2 at the default size picks up the remaining 5
	page2, err := ListActiveComments(db, post.ID, 2, 10)
	assert.NoError(t, err)
	assert.Len(t, page2, 5)

	// Out-of-range values fall back to page 1 / size 10
	normalized, err := ListActiveComments(db, post.ID, -1, -1)
	assert.NoError(t, err)
	page1, err := ListActiveComments(db, post.ID, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, normalized, len(page1))
}

func TestListActiveComments_PreloadsCommenter(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "visible-name")
	post := createTestPost(t, db, user)
	createTestComment(t, db, post, user)

	comments, err := ListActiveComments(db, post.ID, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "visible-name", comments[0].Commenter.DisplayName)
}

func TestSoftDeleteComment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "remover")
	post := createTestPost(t, db, user)
	comment := createTestComment(t, db, post, user)

	deleted, err := SoftDeleteComment(db, comment.ID)
	assert.NoError(t, err)
	assert.False(t, deleted.Active)

	// Row survives, only the flag flips
	var stored models.Comment
	assert.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
	assert.False(t, stored.Active)

	_, err = SoftDeleteComment(db, uuid.New().String())
	assert.Error(t, err)
}
