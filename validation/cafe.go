package validation

import (
	"fmt"

	"cafeadmin/model"
)

var cafeMessages = map[string]string{
	"name":        "Name is required.",
	"description": "Description is required.",
	"location":    "Location is required.",
}

// ValidateCafe returns the failing fields of d. It does not modify d.
func ValidateCafe(d model.CafeDraft) Errors {
	errs := run(d, func(field, _ string) string {
		if m, ok := cafeMessages[field]; ok {
			return m
		}
		return "Invalid value."
	})
	if msg := checkLogo(d.Logo); msg != "" {
		errs["logo"] = msg
	}
	return errs
}

func checkLogo(l *model.Logo) string {
	if l.Empty() {
		return ""
	}
	if l.ContentType == "" {
		return "Logo must have a content type."
	}
	if l.Size() > model.MaxLogoSize {
		return fmt.Sprintf("Logo must be at most %d MiB.", model.MaxLogoSize>>20)
	}
	return ""
}
