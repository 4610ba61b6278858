package handlers

import (
	"jobsapi/internal/domain/models"
	"jobsapi/internal/utils"
)

const (
	msgBodyNotObject = "Request body must be a JSON object"
	msgNoFields      = "Request body must include at least one updatable field"
)

func isNotEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && utils.TrimOrEmpty(s) != ""
}

// validateCreateJob checks a POST /jobs body. Unknown fields are ignored.
func validateCreateJob(body any) []string {
	obj, ok := body.(map[string]any)
	if !ok {
		return []string{msgBodyNotObject}
	}

	errs := []string{}
	for _, field := range models.EditableFields {
		if !isNotEmptyString(obj[field]) {
			errs = append(errs, field+" is a required field")
		}
	}
	return errs
}

// validateUpdateJob checks a PATCH /jobs/:id body. Present keys must hold
// non-empty strings, including explicit nulls.
func validateUpdateJob(body any) []string {
	obj, ok := body.(map[string]any)
	if !ok {
		return []string{msgBodyNotObject}
	}

	if updateDataFrom(obj).Empty() {
		return []string{msgNoFields}
	}

	errs := []string{}
	for _, field := range models.EditableFields {
		if v, ok := obj[field]; ok && !isNotEmptyString(v) {
			errs = append(errs, field+" is a required field")
		}
	}
	return errs
}

func trimmed(obj map[string]any, field string) string {
	s, _ := obj[field].(string)
	return utils.TrimOrEmpty(s)
}

// createDataFrom whitelists the editable fields of a validated body.
func createDataFrom(body any) models.CreateJobData {
	obj, _ := body.(map[string]any)
	return models.CreateJobData{
		Title:       trimmed(obj, models.FieldTitle),
		Department:  trimmed(obj, models.FieldDepartment),
		Location:    trimmed(obj, models.FieldLocation),
		Type:        trimmed(obj, models.FieldType),
		Description: trimmed(obj, models.FieldDescription),
	}
}

// updateDataFrom whitelists the editable fields present in a validated body.
func updateDataFrom(body any) models.UpdateJobData {
	obj, _ := body.(map[string]any)
	pick := func(field string) *string {
		if _, ok := obj[field]; !ok {
			return nil
		}
		s := trimmed(obj, field)
		return &s
	}
	return models.UpdateJobData{
		Title:       pick(models.FieldTitle),
		Department:  pick(models.FieldDepartment),
		Location:    pick(models.FieldLocation),
		Type:        pick(models.FieldType),
		Description: pick(models.FieldDescription),
	}
}
