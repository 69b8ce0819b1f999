package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Blackbiz-api/internal/domain/entity"
	"github.com/jhoicas/Blackbiz-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del catálogo en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestList_CatalogoCompletoEnOrden(t *testing.T) {
	repo := memory.NewBusinessRepository()
	list := repo.List()

	require.Len(t, list, 10, "el catálogo de semilla tiene 10 negocios")
	assert.Equal(t, "1", list[0].ID, "el orden del catálogo debe preservarse")
	assert.Equal(t, "Soul Food Kitchen", list[0].Name)
	assert.Equal(t, "10", list[9].ID)
}

func TestGetByID(t *testing.T) {
	repo := memory.NewBusinessRepository()

	b := repo.GetByID("6")
	require.NotNil(t, b)
	assert.Equal(t, "Healthy Roots Juice Bar", b.Name)
	assert.Equal(t, entity.CategoryHealth, b.Category)

	assert.Nil(t, repo.GetByID("999"), "un id inexistente debe devolver nil")
}

func TestByCategory(t *testing.T) {
	repo := memory.NewBusinessRepository()

	retail := repo.ByCategory(entity.CategoryRetail)
	require.Len(t, retail, 2)
	assert.Equal(t, "4", retail[0].ID)
	assert.Equal(t, "8", retail[1].ID)

	assert.Empty(t, repo.ByCategory(entity.CategoryEducation),
		"una categoría sin negocios devuelve lista vacía, no nil error")
}

func TestFeatured(t *testing.T) {
	repo := memory.NewBusinessRepository()

	featured := repo.Featured()
	require.Len(t, featured, 4)
	ids := make([]string, 0, len(featured))
	for _, b := range featured {
		ids = append(ids, b.ID)
		assert.True(t, b.Featured)
	}
	assert.Equal(t, []string{"1", "3", "5", "8"}, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_PorNombreCaseInsensitive(t *testing.T) {
	repo := memory.NewBusinessRepository()

	got := repo.Search("SOUL")
	require.Len(t, got, 1, "la búsqueda no distingue mayúsculas")
	assert.Equal(t, "1", got[0].ID)
}

func TestSearch_PorDescripcion(t *testing.T) {
	repo := memory.NewBusinessRepository()

	got := repo.Search("juice")
	require.Len(t, got, 1)
	assert.Equal(t, "Healthy Roots Juice Bar", got[0].Name)
}

func TestSearch_PorCiudad(t *testing.T) {
	repo := memory.NewBusinessRepository()

	got := repo.Search("atlanta")
	assert.Len(t, got, 10, "todos los negocios de semilla están en Atlanta")
}

func TestSearch_SinResultados(t *testing.T) {
	repo := memory.NewBusinessRepository()

	assert.Empty(t, repo.Search("zzzzzz"),
		"una búsqueda sin coincidencias devuelve lista vacía")
}
