package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestImportCommentsCSV(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "importer")
	post := createTestPost(t, db, user)

	csvBody := fmt.Sprintf(
		"base_post,commenter,body\n%s,%s,great tutor\n%s,%s,tough grading\n%s,%s,orphan row\n",
		post.ID, user.ID,
		post.ID, user.ID,
		uuid.New().String(), user.ID,
	)

	imported, summary, err := ImportCommentsCSV(db, strings.NewReader(csvBody))

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 2, summary.RecordsInserted)
	assert.Equal(t, 1, summary.RecordsError)
	assert.Len(t, imported, 2)

	// The good rows went through the usual create path
	for _, c := range imported {
		assert.NotEmpty(t, c.ID)
		assert.True(t, c.Active)
		assert.Equal(t, post.ID, c.PostID)
	}
}

func TestImportCommentsCSV_Malformed(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := ImportCommentsCSV(db, strings.NewReader("this is not,\"a csv"))

	assert.Error(t, err)
}

func TestExportCommentsCSV(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "exporter")
	post := createTestPost(t, db, user)
	comment := createTestComment(t, db, post, user)

	var buf bytes.Buffer
	err := ExportCommentsCSV(db, &buf)

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "id,base_post,commenter,body,active,created_at")
	assert.Contains(t, out, comment.ID)
	assert.Contains(t, out, post.ID)
	assert.Contains(t, out, "solid module, heavy workload")
}
