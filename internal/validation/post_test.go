package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

func str(s string) *string  { return &s }
func num(n int) *int        { return &n }
func fl(f float64) *float64 { return &f }

// minimalValid builds a payload carrying only the required fields for the
// given category.
func minimalValid(category string) *transfer.PostInput {
	in := &transfer.PostInput{
		Category:    category,
		Title:       str("Test listing"),
		Description: str("A long enough description"),
		Image:       str("https://example.com/image.jpg"),
		Author:      str("Ana"),
		Location:    str("Mendoza"),
		Date:        str("2025-09-15"),
	}

	switch category {
	case models.CategoryEventos:
		in.StartDate = str("2025-10-01T18:00:00Z")
		in.Venue = str("Club social")
		in.Mode = str("presencial")
	case models.CategoryProductos:
		in.Condition = str("nuevo")
	case models.CategoryUsados:
		in.Condition = str("usado")
	case models.CategoryCursos:
		in.Mode = str("online")
		in.Duration = str("6 semanas")
	}

	return in
}

func TestValidate_AllCategoriesMinimal(t *testing.T) {
	for _, category := range models.Categories {
		errs := Validate(minimalValid(category))
		assert.Nil(t, errs, "category %s minimal payload must validate", category)
	}
}

func TestValidate_MissingRequiredFieldNamesIt(t *testing.T) {
	cases := []struct {
		category string
		field    string
		clear    func(in *transfer.PostInput)
	}{
		{models.CategoryEventos, "startDate", func(in *transfer.PostInput) { in.StartDate = nil }},
		{models.CategoryEventos, "venue", func(in *transfer.PostInput) { in.Venue = nil }},
		{models.CategoryEventos, "mode", func(in *transfer.PostInput) { in.Mode = nil }},
		{models.CategoryProductos, "condition", func(in *transfer.PostInput) { in.Condition = nil }},
		{models.CategoryUsados, "condition", func(in *transfer.PostInput) { in.Condition = nil }},
		{models.CategoryCursos, "duration", func(in *transfer.PostInput) { in.Duration = nil }},
		{models.CategoryCursos, "mode", func(in *transfer.PostInput) { in.Mode = nil }},
	}

	for _, tc := range cases {
		in := minimalValid(tc.category)
		tc.clear(in)

		errs := Validate(in)
		require.NotNil(t, errs, "%s without %s must fail", tc.category, tc.field)
		assert.Contains(t, errs, tc.field)
	}
}

func TestValidate_MissingCommonFields(t *testing.T) {
	for _, field := range []string{"title", "description", "image", "author", "location", "date"} {
		in := minimalValid(models.CategoryServicios)
		switch field {
		case "title":
			in.Title = nil
		case "description":
			in.Description = nil
		case "image":
			in.Image = nil
		case "author":
			in.Author = nil
		case "location":
			in.Location = nil
		case "date":
			in.Date = nil
		}

		errs := Validate(in)
		require.NotNil(t, errs)
		assert.Contains(t, errs, field)
	}
}

func TestValidate_CommonFieldRules(t *testing.T) {
	in := minimalValid(models.CategoryServicios)
	in.Title = str("ab")
	in.Description = str("too short")
	in.Image = str("not-a-url")
	in.Rating = fl(5.5)
	in.Price = num(-1)
	in.Payment = []string{"cash", "gold"}

	errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "image")
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "payment")
}

func TestValidate_PriceZeroIsValid(t *testing.T) {
	in := minimalValid(models.CategoryProductos)
	in.Price = num(0)

	assert.Nil(t, Validate(in))
}

func TestValidate_UnknownCategory(t *testing.T) {
	in := minimalValid(models.CategoryServicios)
	in.Category = "mascotas"

	errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "category")
}

func TestValidate_InvalidEnums(t *testing.T) {
	in := minimalValid(models.CategoryProductos)
	in.Condition = str("roto")
	errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "condition")

	in = minimalValid(models.CategoryEventos)
	in.Mode = str("remoto")
	errs = Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "mode")

	in = minimalValid(models.CategoryUsados)
	in.Condition = str("nuevo")
	errs = Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "condition")
}

func TestValidate_RequiredDateMustParse(t *testing.T) {
	in := minimalValid(models.CategoryEventos)
	in.StartDate = str("not a date")

	errs := Validate(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "startDate")
}

func TestValidateUpdate_EmptyIsValid(t *testing.T) {
	assert.Nil(t, ValidateUpdate(&transfer.PostInput{}))
}

func TestValidateUpdate_ChecksProvidedFields(t *testing.T) {
	errs := ValidateUpdate(&transfer.PostInput{
		Title:  str("ab"),
		Status: str("archived"),
		Mode:   str("remoto"),
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "mode")
}

func TestParseISODate(t *testing.T) {
	for _, s := range []string{"2025-10-01T18:00:00Z", "2025-10-01T18:00", "2025-10-01"} {
		_, ok := ParseISODate(s)
		assert.True(t, ok, "%q must parse", s)
	}

	_, ok := ParseISODate("01/10/2025")
	assert.False(t, ok)
}
