package careguide

import "context"

// Guide is the growing and use reference for one plant. Every field except ID and PlantName is optional.
type Guide struct {
	ID                   string         `json:"id" firestore:"-"`
	PlantName            string         `json:"plant_name" firestore:"plant_name"`
	WateringSchedule     string         `json:"watering_schedule,omitempty" firestore:"watering_schedule"`
	SunlightRequirements string         `json:"sunlight_requirements,omitempty" firestore:"sunlight_requirements"`
	SoilType             string         `json:"soil_type,omitempty" firestore:"soil_type"`
	TemperatureRange     string         `json:"temperature_range,omitempty" firestore:"temperature_range"`
	GrowingSeason        string         `json:"growing_season,omitempty" firestore:"growing_season"`
	PropagationMethods   []string       `json:"propagation_methods,omitempty" firestore:"propagation_methods"`
	CommonPests          []string       `json:"common_pests,omitempty" firestore:"common_pests"`
	HarvestTips          string         `json:"harvest_tips,omitempty" firestore:"harvest_tips"`
	StorageTips          string         `json:"storage_tips,omitempty" firestore:"storage_tips"`
	NutritionalInfo      map[string]any `json:"nutritional_info,omitempty" firestore:"nutritional_info"`
	MedicinalProperties  []string       `json:"medicinal_properties,omitempty" firestore:"medicinal_properties"`
}

// Repository reads care guides.
type Repository interface {
	// ListGuides returns every guide ordered by plant name.
	ListGuides(ctx context.Context) ([]Guide, error)
}
