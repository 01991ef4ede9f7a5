package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
func boolean(b bool) *bool { return &b }

func validInput(category string) *transfer.PostInput {
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

func TestShapeForCreate_StatusForcedToPending(t *testing.T) {
	in := validInput(models.CategoryEventos)
	in.Status = str(models.StatusApproved)

	post, _, err := shapeForCreate(in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, post.Status)
}

func TestShapeForCreate_ServerAssignsIDAndDate(t *testing.T) {
	in := validInput(models.CategoryServicios)
	in.Date = str("1999-01-01T00:00:00Z")

	post, _, err := shapeForCreate(in)
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.WithinDuration(t, time.Now(), post.Date, 5*time.Second, "client-supplied date must be ignored")
}

func TestShapeForCreate_NoCrossCategoryLeakage(t *testing.T) {
	in := validInput(models.CategoryEventos)
	// fields belonging to other categories must be dropped
	in.Condition = str("nuevo")
	in.Duration = str("4 semanas")
	in.NeededBy = str("2025-11-01")
	in.ExperienceYears = num(10)
	in.UsageTime = str("2 años")

	post, _, err := shapeForCreate(in)
	require.NoError(t, err)

	assert.NotNil(t, post.StartDate)
	assert.NotNil(t, post.Venue)
	assert.Nil(t, post.Condition)
	assert.Nil(t, post.Duration)
	assert.Nil(t, post.NeededBy)
	assert.Nil(t, post.ExperienceYears)
	assert.Nil(t, post.UsageTime)
}

func TestShapeForCreate_PriceZeroVersusAbsent(t *testing.T) {
	in := validInput(models.CategoryProductos)
	post, _, err := shapeForCreate(in)
	require.NoError(t, err)
	assert.Nil(t, post.Price)

	in = validInput(models.CategoryProductos)
	in.Price = num(0)
	post, _, err = shapeForCreate(in)
	require.NoError(t, err)
	require.NotNil(t, post.Price)
	assert.Equal(t, 0, *post.Price)
}

func TestShapeForCreate_ListDefaultsAreEmptyNotNil(t *testing.T) {
	post, _, err := shapeForCreate(validInput(models.CategoryPedidos))
	require.NoError(t, err)
	assert.NotNil(t, post.Tags)
	assert.Len(t, post.Tags, 0)
	assert.NotNil(t, post.Payment)
	assert.Len(t, post.Payment, 0)
}

func TestShapeForCreate_UsadosConditionFixed(t *testing.T) {
	in := validInput(models.CategoryUsados)
	in.Condition = str("nuevo")

	post, _, err := shapeForCreate(in)
	require.NoError(t, err)
	require.NotNil(t, post.Condition)
	assert.Equal(t, "usado", *post.Condition)
}

func TestShapeForCreate_OptionalDateFallsBack(t *testing.T) {
	in := validInput(models.CategoryEventos)
	in.EndDate = str("not a date")

	post, _, err := shapeForCreate(in)
	require.NoError(t, err)
	assert.Nil(t, post.EndDate)
}

func TestShapeSocials_FromContactMap(t *testing.T) {
	links, provided := shapeSocials(&transfer.PostInput{
		Contact: map[string]string{
			"instagram": "https://instagram.com/someone",
			"whatsapp":  "https://wa.me/549261000000",
			"email":     "",
		},
	})

	assert.True(t, provided)
	require.Len(t, links, 2)
	assert.Equal(t, "instagram", links[0].Name)
	assert.Equal(t, "whatsapp", links[1].Name)
}

func TestShapeSocials_ExplicitListDropsEmptyURLs(t *testing.T) {
	links, provided := shapeSocials(&transfer.PostInput{
		Socials: []transfer.SocialLinkInput{
			{Name: "instagram", URL: "https://instagram.com/someone"},
			{Name: "telegram", URL: ""},
		},
	})

	assert.True(t, provided)
	require.Len(t, links, 1)
	assert.Equal(t, "instagram", links[0].Name)
}

func TestShapeSocials_AbsentMeansNoReplacement(t *testing.T) {
	links, provided := shapeSocials(&transfer.PostInput{})
	assert.False(t, provided)
	assert.Nil(t, links)
}

func TestShapeForUpdate_OnlyProvidedFields(t *testing.T) {
	fields := shapeForUpdate(models.CategoryServicios, &transfer.PostInput{
		Title:  str("New title"),
		Urgent: boolean(true),
	})

	assert.Equal(t, "New title", fields["title"])
	assert.Equal(t, true, fields["urgent"])
	assert.NotContains(t, fields, "description")
	assert.NotContains(t, fields, "price")
	assert.NotContains(t, fields, "category")
}

func TestShapeForUpdate_CategoryNeverChanges(t *testing.T) {
	fields := shapeForUpdate(models.CategoryProductos, &transfer.PostInput{
		Category: models.CategoryEventos,
		Title:    str("New title"),
	})

	assert.NotContains(t, fields, "category")
}

func TestShapeForUpdate_ScopesFieldsToStoredCategory(t *testing.T) {
	fields := shapeForUpdate(models.CategoryProductos, &transfer.PostInput{
		Condition: str("reacondicionado"),
		Duration:  str("4 semanas"),
		Venue:     str("somewhere"),
	})

	assert.Equal(t, "reacondicionado", fields["condition"])
	assert.NotContains(t, fields, "duration")
	assert.NotContains(t, fields, "venue")
}

func TestShapeForUpdate_StatusChange(t *testing.T) {
	fields := shapeForUpdate(models.CategoryPedidos, &transfer.PostInput{
		Status: str(models.StatusApproved),
	})

	assert.Equal(t, models.StatusApproved, fields["status"])
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "categoria", normalizeQuery("  Categoría "))
	assert.Equal(t, "hibrido", normalizeQuery("Híbrido"))
	assert.Equal(t, "", normalizeQuery("   "))
}
