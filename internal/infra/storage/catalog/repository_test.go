package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

func testCatalog() *Repository {
	return NewRepository([]domain.DentalService{
		{Name: "Teeth Whitening", PriceUAH: 1500},
		{Name: "Tooth Extraction", PriceUAH: 2000},
		{Name: "Dental Checkup", PriceUAH: 500},
	})
}

func TestRepository_FindBestMatch(t *testing.T) {
	repo := testCatalog()

	tests := []struct {
		name     string
		query    string
		wantName string
		wantErr  bool
	}{
		{"partial query", "whitening", "Teeth Whitening", false},
		{"exact name", "Tooth Extraction", "Tooth Extraction", false},
		{"case insensitive", "TOOTH EXTRACTION", "Tooth Extraction", false},
		{"short query above cutoff", "tooth", "Tooth Extraction", false},
		{"distant query", "xyz", "", true},
		{"empty query", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := repo.FindBestMatch(tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrServiceNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, svc.Name)
		})
	}
}

func TestRepository_FindBestMatch_Deterministic(t *testing.T) {
	repo := testCatalog()

	first, err := repo.FindBestMatch("whitening")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		svc, err := repo.FindBestMatch("whitening")
		require.NoError(t, err)
		assert.Equal(t, first.Name, svc.Name)
	}
}

func TestRepository_FindBestMatch_TieKeepsCatalogOrder(t *testing.T) {
	repo := NewRepository([]domain.DentalService{
		{Name: "Ab", PriceUAH: 10},
		{Name: "Ba", PriceUAH: 20},
	})

	// Обе услуги одинаково похожи на запрос — выигрывает более ранняя запись
	svc, err := repo.FindBestMatch("a")
	require.NoError(t, err)
	assert.Equal(t, "Ab", svc.Name)
}

func TestRepository_Suggest(t *testing.T) {
	repo := testCatalog()

	suggestions := repo.Suggest("tooth")
	require.Len(t, suggestions, 3)

	// По убыванию схожести
	assert.Equal(t, "Tooth Extraction", suggestions[0].Name)
	assert.Equal(t, "Teeth Whitening", suggestions[1].Name)
	assert.Equal(t, "Dental Checkup", suggestions[2].Name)
}

func TestRepository_Suggest_NoMatches(t *testing.T) {
	repo := testCatalog()

	assert.Empty(t, repo.Suggest("xyz"))
	assert.Empty(t, repo.Suggest(""))
}

func TestRepository_Suggest_CapsAtMaxSuggestions(t *testing.T) {
	repo := NewRepository([]domain.DentalService{
		{Name: "Aa"},
		{Name: "Ab"},
		{Name: "Ac"},
		{Name: "Ad"},
	})

	suggestions := repo.Suggest("a")
	require.Len(t, suggestions, MaxSuggestions)
	assert.Equal(t, "Aa", suggestions[0].Name)
	assert.Equal(t, "Ab", suggestions[1].Name)
	assert.Equal(t, "Ac", suggestions[2].Name)
}

func TestRepository_List(t *testing.T) {
	repo := testCatalog()

	services := repo.List()
	require.Len(t, services, 3)
	assert.Equal(t, "Teeth Whitening", services[0].Name)
	assert.Equal(t, "Tooth Extraction", services[1].Name)
	assert.Equal(t, "Dental Checkup", services[2].Name)

	// Возвращается копия — изменения не трогают репозиторий
	services[0].Name = "mutated"
	assert.Equal(t, "Teeth Whitening", repo.List()[0].Name)
}
