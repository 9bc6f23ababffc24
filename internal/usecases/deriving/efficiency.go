package deriving

import (
	"sort"
	"strings"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// countryEntity normaliza o país da loja para hk ou mc
func countryEntity(country string) string {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "HK", "HONG KONG":
		return EntityHK
	case "MC", "MO", "MACAU", "MACAO":
		return EntityMC
	}
	return ""
}

func toAreaSales(s domain.StoreArea) domain.AreaSales {
	return domain.AreaSales{
		Code:     s.StoreCode,
		NetSales: s.NetSales.OrZero(),
		Area:     s.Area.OrZero(),
		Closed:   s.Closed,
	}
}

func (s *Service) efficiency(stores []domain.StoreArea, elapsedDays int) Efficiency {
	byEntity := map[string][]domain.AreaSales{}
	all := make([]domain.AreaSales, 0, len(stores))
	excluded := []string{}

	for _, store := range stores {
		area := toAreaSales(store)
		all = append(all, area)

		entity := countryEntity(store.Country)
		if entity != "" {
			byEntity[entity] = append(byEntity[entity], area)
		}

		if area.ExcludedFromArea(s.closedStoreThreshold) {
			excluded = append(excluded, area.Code)
		}
	}
	sort.Strings(excluded)

	return Efficiency{
		HK:          domain.AreaEfficiency(byEntity[EntityHK], elapsedDays, s.closedStoreThreshold),
		MC:          domain.AreaEfficiency(byEntity[EntityMC], elapsedDays, s.closedStoreThreshold),
		Total:       domain.AreaEfficiency(all, elapsedDays, s.closedStoreThreshold),
		ElapsedDays: elapsedDays,
		Excluded:    excluded,
	}
}
