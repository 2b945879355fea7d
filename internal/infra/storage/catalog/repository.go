package catalog

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
)

// Пороги схожести для нечеткого поиска по названиям услуг.
// BestMatchCutoff — строгий порог для однозначного ответа с ценой,
// SuggestionCutoff — мягкий порог для подсказок "возможно, вы имели в виду"
const (
	BestMatchCutoff  = 0.4
	SuggestionCutoff = 0.2

	// MaxSuggestions максимальное количество подсказок
	MaxSuggestions = 3
)

// Repository хранит прайс-лист клиники в памяти.
// Заполняется один раз при старте и далее только читается — блокировки не нужны.
type Repository struct {
	services   []domain.DentalService
	normalized []string // имена в нижнем регистре, тот же порядок
}

// NewRepository создает репозиторий поверх загруженного списка услуг.
// Порядок списка сохраняется: при равной схожести выигрывает более ранняя запись.
func NewRepository(services []domain.DentalService) *Repository {
	normalized := make([]string, len(services))
	for i := range services {
		normalized[i] = services[i].NormalizedName()
	}

	return &Repository{
		services:   services,
		normalized: normalized,
	}
}

// FindBestMatch возвращает единственную услугу, наиболее похожую на запрос,
// если её схожесть не ниже BestMatchCutoff. Иначе ErrServiceNotFound.
func (r *Repository) FindBestMatch(query string) (*domain.DentalService, error) {
	matches := r.closeMatches(query, 1, BestMatchCutoff)
	if len(matches) == 0 {
		return nil, ErrServiceNotFound
	}

	svc := r.services[matches[0]]
	return &svc, nil
}

// Suggest возвращает до MaxSuggestions услуг со схожестью не ниже SuggestionCutoff,
// по убыванию схожести. Пустой результат — повод показать полный прайс-лист.
func (r *Repository) Suggest(query string) []domain.DentalService {
	matches := r.closeMatches(query, MaxSuggestions, SuggestionCutoff)

	result := make([]domain.DentalService, len(matches))
	for i, idx := range matches {
		result[i] = r.services[idx]
	}
	return result
}

// List возвращает полный прайс-лист в исходном порядке
func (r *Repository) List() []domain.DentalService {
	result := make([]domain.DentalService, len(r.services))
	copy(result, r.services)
	return result
}

// closeMatches возвращает индексы до n услуг со схожестью >= cutoff,
// отсортированные по убыванию схожести. Сортировка стабильная, поэтому
// при равной схожести порядок каталога сохраняется.
func (r *Repository) closeMatches(query string, n int, cutoff float64) []int {
	normalizedQuery := strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		index int
		score float64
	}

	candidates := make([]scored, 0, len(r.normalized))
	for i, name := range r.normalized {
		if score := similarityRatio(normalizedQuery, name); score >= cutoff {
			candidates = append(candidates, scored{index: i, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	indexes := make([]int, len(candidates))
	for i, c := range candidates {
		indexes[i] = c.index
	}
	return indexes
}
