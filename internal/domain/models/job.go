package models

import "jobsapi/internal/utils"

// Job is a stored job posting.
//
// Posted is a display value ("2 days ago") managed by the system; callers
// cannot set it.
type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Posted      string `json:"posted"`
}

// PostedJustNow is the display value given to newly created postings.
const PostedJustNow = "just now"

// Job field names, as exposed in JSON and accepted for sorting.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDepartment  = "department"
	FieldLocation    = "location"
	FieldType        = "type"
	FieldDescription = "description"
	FieldPosted      = "posted"
)

// EditableFields lists the fields a caller may set, in validation order.
var EditableFields = []string{FieldTitle, FieldDepartment, FieldLocation, FieldType, FieldDescription}

// Field returns the value of the named field, or nil for unknown names.
func (j Job) Field(name string) any {
	switch name {
	case FieldID:
		return j.ID
	case FieldTitle:
		return j.Title
	case FieldDepartment:
		return j.Department
	case FieldLocation:
		return j.Location
	case FieldType:
		return j.Type
	case FieldDescription:
		return j.Description
	case FieldPosted:
		return j.Posted
	}
	return nil
}

// Trimmed returns j with surrounding whitespace removed from its text fields.
func (j Job) Trimmed() Job {
	j.Title = utils.TrimOrEmpty(j.Title)
	j.Department = utils.TrimOrEmpty(j.Department)
	j.Location = utils.TrimOrEmpty(j.Location)
	j.Type = utils.TrimOrEmpty(j.Type)
	j.Description = utils.TrimOrEmpty(j.Description)
	j.Posted = utils.TrimOrEmpty(j.Posted)
	return j
}

// BlankFields lists the editable fields that are empty after trimming.
func (j Job) BlankFields() []string {
	var blank []string
	for _, name := range EditableFields {
		if s, _ := j.Field(name).(string); utils.TrimOrEmpty(s) == "" {
			blank = append(blank, name)
		}
	}
	return blank
}

// CreateJobData is the payload required to create a posting.
type CreateJobData struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// UpdateJobData is a partial update; nil fields are left untouched.
type UpdateJobData struct {
	Title       *string `json:"title,omitempty"`
	Department  *string `json:"department,omitempty"`
	Location    *string `json:"location,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Empty reports whether no field is set.
func (u UpdateJobData) Empty() bool {
	return u.Title == nil && u.Department == nil && u.Location == nil && u.Type == nil && u.Description == nil
}

// Apply returns j with every set field of u copied over.
func (u UpdateJobData) Apply(j Job) Job {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Department != nil {
		j.Department = *u.Department
	}
	if u.Location != nil {
		j.Location = *u.Location
	}
	if u.Type != nil {
		j.Type = *u.Type
	}
	if u.Description != nil {
		j.Description = *u.Description
	}
	return j
}
