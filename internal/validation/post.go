// Package validation checks raw post payloads against the per-category
// rules before anything reaches storage. A payload is valid against exactly
// one category branch or invalid; there is no lenient mode.
package validation

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ZBrian99/inclusiva-api/internal/apperror"
	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

// isoLayouts are the accepted shapes for incoming date strings.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISODate parses an ISO-8601 date string. Callers decide whether a
// failed parse is an error (required fields) or falls back to a default
// (optional fields).
func ParseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate checks a creation payload. It returns nil when the payload is
// valid, otherwise the field-indexed error collection.
func Validate(in *transfer.PostInput) apperror.FieldErrors {
	errs := apperror.FieldErrors{}

	validateCommon(in, errs, true)
	validateCategory(in, errs, true)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUpdate checks a partial update payload: only provided fields are
// validated, nothing is required, and category is ignored (it is never
// altered by updates).
func ValidateUpdate(in *transfer.PostInput) apperror.FieldErrors {
	errs := apperror.FieldErrors{}

	validateCommon(in, errs, false)
	if in.Status != nil && !contains(models.Statuses, *in.Status) {
		errs.Add("status", "status must be one of pending, approved, rejected")
	}
	validateCategoryOptionals(in, errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateCommon(in *transfer.PostInput, errs apperror.FieldErrors, required bool) {
	checkString(errs, "title", in.Title, required, 3, 0)
	if in.Subtitle != nil {
		checkString(errs, "subtitle", in.Subtitle, false, 3, 160)
	}
	checkString(errs, "description", in.Description, required, 10, 0)
	checkURL(errs, "image", in.Image, required)
	checkString(errs, "author", in.Author, required, 2, 0)
	checkURL(errs, "authorAvatar", in.AuthorAvatar, false)
	checkString(errs, "location", in.Location, required, 2, 0)
	// the stored date is server-assigned, but the field must still be sent
	if required && in.Date == nil {
		errs.Add("date", "date is required")
	}

	checkNonNegative(errs, "price", in.Price)
	if in.PriceLabel != nil && len([]rune(*in.PriceLabel)) > 50 {
		errs.Add("priceLabel", "priceLabel must have at most 50 characters")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		errs.Add("rating", "rating must be between 0 and 5")
	}
	checkNonNegative(errs, "ratingCount", in.RatingCount)

	for _, p := range in.Payment {
		if !contains(models.PaymentMethods, p) {
			errs.Add("payment", fmt.Sprintf("unknown payment method %q", p))
		}
	}
}

func validateCategory(in *transfer.PostInput, errs apperror.FieldErrors, required bool) {
	switch in.Category {
	case models.CategoryEventos:
		if required {
			if in.StartDate == nil {
				errs.Add("startDate", "startDate is required")
			} else if _, ok := ParseISODate(*in.StartDate); !ok {
				errs.Add("startDate", "startDate must be a valid ISO date")
			}
			checkString(errs, "venue", in.Venue, true, 1, 0)
			checkEnum(errs, "mode", in.Mode, true, models.Modes)
		}
		checkNonNegative(errs, "capacity", in.Capacity)
	case models.CategoryServicios:
		checkNonNegative(errs, "experienceYears", in.ExperienceYears)
	case models.CategoryProductos:
		checkEnum(errs, "condition", in.Condition, required, models.ProductConditions)
		checkNonNegative(errs, "stock", in.Stock)
	case models.CategoryUsados:
		if in.Condition == nil {
			if required {
				errs.Add("condition", "condition is required")
			}
		} else if *in.Condition != "usado" {
			errs.Add("condition", "condition must be usado")
		}
	case models.CategoryCursos:
		checkEnum(errs, "mode", in.Mode, required, models.Modes)
		checkString(errs, "duration", in.Duration, required, 1, 0)
		checkEnum(errs, "level", in.Level, false, models.CourseLevels)
	case models.CategoryPedidos:
		// neededBy and budgetRange are free text, nothing to enforce
	default:
		errs.Add("category", "category must be one of eventos, servicios, productos, usados, cursos, pedidos")
	}
}

// validateCategoryOptionals enforces formats and enums on category fields in
// update payloads without knowing which category the post belongs to; the
// shaper scopes them to the stored category.
func validateCategoryOptionals(in *transfer.PostInput, errs apperror.FieldErrors) {
	if in.StartDate != nil {
		if _, ok := ParseISODate(*in.StartDate); !ok {
			errs.Add("startDate", "startDate must be a valid ISO date")
		}
	}
	checkEnum(errs, "mode", in.Mode, false, models.Modes)
	checkEnum(errs, "level", in.Level, false, models.CourseLevels)
	checkEnum(errs, "condition", in.Condition, false, models.AllConditions)
	checkNonNegative(errs, "capacity", in.Capacity)
	checkNonNegative(errs, "experienceYears", in.ExperienceYears)
	checkNonNegative(errs, "stock", in.Stock)
}

func checkString(errs apperror.FieldErrors, field string, val *string, required bool, minLen, maxLen int) {
	if val == nil {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	n := len([]rune(*val))
	if n < minLen {
		errs.Add(field, fmt.Sprintf("%s must have at least %d characters", field, minLen))
	}
	if maxLen > 0 && n > maxLen {
		errs.Add(field, fmt.Sprintf("%s must have at most %d characters", field, maxLen))
	}
}

func checkURL(errs apperror.FieldErrors, field string, val *string, required bool) {
	if val == nil {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	u, err := url.Parse(*val)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs.Add(field, field+" must be a valid URL")
	}
}

func checkEnum(errs apperror.FieldErrors, field string, val *string, required bool, allowed []string) {
	if val == nil {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !contains(allowed, *val) {
		errs.Add(field, fmt.Sprintf("%s must be one of %v", field, allowed))
	}
}

func checkNonNegative(errs apperror.FieldErrors, field string, val *int) {
	if val != nil && *val < 0 {
		errs.Add(field, field+" must be non-negative")
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
