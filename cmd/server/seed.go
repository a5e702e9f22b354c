package main

import (
	"time"

	"github.com/plantpal/plantpal-service/internal/careguide"
	"github.com/plantpal/plantpal-service/internal/challenge"
	"github.com/plantpal/plantpal-service/internal/journal"
	"github.com/plantpal/plantpal-service/internal/recipe"
	"github.com/plantpal/plantpal-service/internal/season"
	"github.com/plantpal/plantpal-service/internal/sighting"
)

// memoryRepositories builds the in-process datastore with a small demo catalog so every route
// works without Firestore or Postgres. Recipe timestamps are placed just before now.
func memoryRepositories(now time.Time) repositories {
	species := []sighting.Species{
		{ID: "sp-knotweed", Name: "Japanese Knotweed", Category: season.CategoryInvasive},
		{ID: "sp-balsam", Name: "Himalayan Balsam", Category: season.CategoryInvasive},
		{ID: "sp-hogweed", Name: "Giant Hogweed", Category: season.CategoryInvasive},
		{ID: "sp-wild-garlic", Name: "Wild Garlic", Category: season.CategoryEdible},
		{ID: "sp-elderflower", Name: "Elderflower", Category: season.CategoryEdible},
		{ID: "sp-nettle", Name: "Stinging Nettle", Category: season.CategoryMedicinal},
	}
	speciesNames := make(map[string]string, len(species))
	for _, sp := range species {
		speciesNames[sp.ID] = sp.Name
	}

	challenges := challenge.NewMemoryRepository()
	for _, c := range []challenge.Challenge{
		{ID: "ch-identify", Title: "Plant Detective", Description: "Identify 10 plants", Category: challenge.CategoryIdentification, GoalCount: 10, PointsReward: 100, Icon: "Search", Active: true},
		{ID: "ch-report", Title: "Invasive Watch", Description: "Report 3 invasive species", Category: challenge.CategoryReporting, GoalCount: 3, PointsReward: 150, Icon: "AlertTriangle", Active: true},
		{ID: "ch-recipe", Title: "Forager Chef", Description: "Try 2 wild recipes", Category: challenge.CategoryRecipe, GoalCount: 2, PointsReward: 75, Icon: "ChefHat", Active: true},
	} {
		challenges.PutChallenge(c)
	}

	return repositories{
		season: season.NewMemoryRepository(
			season.Plant{ID: "p-snowdrop", CommonName: "Snowdrop", ScientificName: "Galanthus nivalis", MonthsActive: []int{1, 2, 3}, Category: season.CategoryOrnamental, CareDifficulty: season.CareEasy},
			season.Plant{ID: "p-wild-garlic", CommonName: "Wild Garlic", ScientificName: "Allium ursinum", MonthsActive: []int{3, 4, 5}, Category: season.CategoryEdible, CareDifficulty: season.CareEasy},
			season.Plant{ID: "p-nettle", CommonName: "Stinging Nettle", ScientificName: "Urtica dioica", MonthsActive: []int{3, 4, 5, 6, 7, 8, 9}, Category: season.CategoryMedicinal, CareDifficulty: season.CareEasy},
			season.Plant{ID: "p-elderflower", CommonName: "Elderflower", ScientificName: "Sambucus nigra", MonthsActive: []int{5, 6, 7}, Category: season.CategoryEdible, CareDifficulty: season.CareModerate},
			season.Plant{ID: "p-balsam", CommonName: "Himalayan Balsam", ScientificName: "Impatiens glandulifera", MonthsActive: []int{6, 7, 8, 9, 10}, Category: season.CategoryInvasive, CareDifficulty: season.CareEasy},
			season.Plant{ID: "p-holly", CommonName: "Holly", ScientificName: "Ilex aquifolium", MonthsActive: []int{11, 12, 1}, Category: season.CategoryOrnamental, CareDifficulty: season.CareModerate},
		),
		challenge: challenges,
		journal:   journal.NewMemoryRepository(),
		sighting:  sighting.NewMemoryRepository(species...),
		recipe: recipe.NewMemoryRepository(speciesNames,
			recipe.Recipe{ID: "rc-pesto", Title: "Wild Garlic Pesto", Ingredients: []string{"wild garlic leaves", "olive oil", "hazelnuts", "hard cheese"}, Steps: []string{"Wash the leaves", "Blend everything until smooth"}, PrepTimeMinutes: 15, SpeciesID: "sp-wild-garlic", CreatedAt: now.Add(-72 * time.Hour)},
			recipe.Recipe{ID: "rc-cordial", Title: "Elderflower Cordial", Ingredients: []string{"elderflower heads", "sugar", "lemon"}, Steps: []string{"Steep the flowers overnight", "Strain and bottle"}, ChefTip: "Pick on a dry morning.", PrepTimeMinutes: 30, SpeciesID: "sp-elderflower", CreatedAt: now.Add(-48 * time.Hour)},
			recipe.Recipe{ID: "rc-nettle-soup", Title: "Nettle Soup", Ingredients: []string{"young nettle tops", "potato", "onion", "stock"}, Steps: []string{"Blanch the nettles", "Simmer with the vegetables", "Blend"}, PrepTimeMinutes: 40, SpeciesID: "sp-nettle", CreatedAt: now.Add(-24 * time.Hour)},
		),
		careguide: careguide.NewMemoryRepository(
			careguide.Guide{ID: "g-basil", PlantName: "Basil", WateringSchedule: "Water when the top of the soil is dry", SunlightRequirements: "Full sun", CommonPests: []string{"aphids", "slugs"}},
			careguide.Guide{ID: "g-mint", PlantName: "Mint", WateringSchedule: "Keep soil moist", SunlightRequirements: "Partial shade", PropagationMethods: []string{"cuttings", "division"}},
			careguide.Guide{ID: "g-wild-garlic", PlantName: "Wild Garlic", GrowingSeason: "Early spring", HarvestTips: "Pick young leaves before flowering", MedicinalProperties: []string{"antibacterial"}},
		),
	}
}
