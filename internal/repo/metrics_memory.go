package repo

type InMemoryMetricsRepository struct {
	catalogRepo CatalogRepository
	changeRepo  ChangeRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	catalogRepo CatalogRepository,
	changeRepo ChangeRepository,
) {
	i.catalogRepo = catalogRepo
	i.changeRepo = changeRepo
}

// GetDashboardMetrics implements MetricsRepository. Everything is derived
// live from the catalog and the change log, so the per-category numbers
// expose any drift against the static taxonomy counts.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	motorcycles, err := i.catalogRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalModels = len(motorcycles)

	liveCounts := map[string]int{}
	for _, moto := range motorcycles {
		liveCounts[moto.Category]++

		if m.MinPrice == 0 || moto.Price < m.MinPrice {
			m.MinPrice = moto.Price
		}
		if moto.Price > m.MaxPrice {
			m.MaxPrice = moto.Price
		}
		m.AvgPrice += moto.Price
	}
	if len(motorcycles) > 0 {
		m.AvgPrice /= float64(len(motorcycles))
	}

	for _, cat := range i.catalogRepo.Categories() {
		m.ByCategory = append(m.ByCategory, CategoryCount{
			CategoryID:     cat.ID,
			LiveCount:      liveCounts[cat.ID],
			DisplayedCount: cat.Count,
		})
	}

	for _, moto := range motorcycles {
		_, count, err := i.changeRepo.Get(ChangeFilter{MotorcycleID: moto.ID})
		if err != nil {
			return m, err
		}
		m.TotalChanges += count
		if count > m.MostEditedModel.ChangeCount {
			m.MostEditedModel.MotorcycleID = moto.ID
			m.MostEditedModel.ChangeCount = count
		}
	}

	return m, nil
}
