package schedule

import (
	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

func criteriaWith(modify func(c *domain.FilterCriteria)) domain.FilterCriteria {
	c := domain.DefaultFilterCriteria()
	if modify != nil {
		modify(&c)
	}
	return c
}

func surfClass() *domain.Activity {
	return &domain.Activity{
		ID:          "surf-1",
		Name:        "Aula de Surf",
		Description: "Iniciação ao surf para todas as idades",
		Type:        domain.TypeSports,
		City:        "Niterói",
		Beach:       "Icaraí",
		Price:       80,
		Slots: []domain.TimeSlot{
			{Period: "Manhã", Time: "09:00–10:00", Weekday: domain.Monday, Locality: domain.LocalitySand, Capacity: 10, Enrolled: 5},
			{Period: "Tarde", Time: "15:00–16:00", Weekday: domain.Tuesday, Locality: domain.LocalitySea, Capacity: 8, Enrolled: 8},
		},
	}
}

func sampleCatalog() []*domain.Activity {
	return []*domain.Activity{
		surfClass(),
		{
			ID:          "yoga-1",
			Name:        "Yoga ao Pôr do Sol",
			Description: "Prática relaxante no calçadão",
			Type:        domain.TypeWellness,
			City:        "Rio de Janeiro",
			Beach:       "Ipanema",
			Price:       50,
			Slots: []domain.TimeSlot{
				{Weekday: domain.Monday, Locality: domain.LocalityBoardwalk, Capacity: 20, Enrolled: 2},
				{Weekday: domain.Saturday, Locality: domain.LocalityBoardwalk, Capacity: 20, Enrolled: 19},
			},
		},
		{
			ID:    "sup-1",
			Name:  "Stand Up Paddle",
			Type:  domain.TypeLeisure,
			City:  "Rio de Janeiro",
			Beach: "Copacabana",
			Price: 120,
			Slots: []domain.TimeSlot{
				{Weekday: domain.Sunday, Locality: domain.LocalitySea, Capacity: 6, Enrolled: 1},
				{Weekday: "", Locality: domain.LocalitySea, Capacity: 6},
			},
		},
		{
			ID:    "tour-1",
			Name:  "Passeio Histórico",
			Type:  domain.TypeTourism,
			City:  "Niterói",
			Beach: "Itacoatiara",
			Price: 0,
		},
	}
}

func activityIDs(activities []*domain.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}

func bucketIDs(entries []domain.ScheduledSlot) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Activity.ID)
	}
	return ids
}
