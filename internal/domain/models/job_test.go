package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobBlankFields(t *testing.T) {
	j := Job{ID: 1, Title: " ", Department: "Ops", Location: "", Type: "Contract", Description: "\t"}

	assert.Equal(t, []string{FieldTitle, FieldLocation, FieldDescription}, j.BlankFields())

	j = Job{Title: "a", Department: "b", Location: "c", Type: "d", Description: "e"}
	assert.Empty(t, j.BlankFields())
}

func TestJobTrimmed(t *testing.T) {
	j := Job{ID: 4, Title: "  Analyst ", Posted: " today "}.Trimmed()

	assert.Equal(t, int64(4), j.ID)
	assert.Equal(t, "Analyst", j.Title)
	assert.Equal(t, "today", j.Posted)
}

func TestUpdateJobDataEmpty(t *testing.T) {
	assert.True(t, UpdateJobData{}.Empty())

	title := "x"
	assert.False(t, UpdateJobData{Title: &title}.Empty())
}
