package identify

import "github.com/plantpal/plantpal-service/internal/season"

// mockClassifications is the fixed set Classify draws from until a real model is wired in.
var mockClassifications = []Classification{
	{
		Species:     "Garlic Mustard (Alliaria petiolata)",
		Category:    season.CategoryInvasive,
		Confidence:  0.92,
		Description: "An invasive biennial herb that threatens native plants by forming dense stands. It releases chemicals that inhibit other plant growth and disrupts native ecosystems.",
		SafetyNotes: "Edible but highly invasive - report all sightings. All parts are edible with a mild garlic flavor.",
	},
	{
		Species:     "Purslane (Portulaca oleracea)",
		Category:    season.CategoryEdible,
		Confidence:  0.88,
		Description: "A nutritious succulent herb exceptionally rich in omega-3 fatty acids, vitamins A, C, and E. Contains more omega-3s than many fish oils.",
		SafetyNotes: "Safe to eat when properly identified. Avoid areas treated with pesticides. Best eaten fresh in salads.",
	},
	{
		Species:     "Japanese Knotweed (Fallopia japonica)",
		Category:    season.CategoryInvasive,
		Confidence:  0.95,
		Description: "Fast-growing invasive perennial that can grow through concrete and damage buildings. Spreads rapidly through underground rhizomes.",
		SafetyNotes: "Extremely invasive - do not plant. Young shoots are edible (taste like rhubarb) but harvesting doesn't control spread.",
	},
	{
		Species:     "Dandelion (Taraxacum officinale)",
		Category:    season.CategoryEdible,
		Confidence:  0.91,
		Description: "Highly nutritious perennial where every part is edible and medicinal. Leaves are rich in vitamins A, C, K, calcium, and iron. Roots can be roasted as coffee substitute.",
		SafetyNotes: "Safe when properly identified. Young spring leaves are less bitter. Excellent for liver health and digestion.",
	},
	{
		Species:     "Wild Violet (Viola sororia)",
		Category:    season.CategoryEdible,
		Confidence:  0.85,
		Description: "Native North American wildflower with heart-shaped leaves. Both flowers and leaves are edible, high in vitamins A and C.",
		SafetyNotes: "Completely safe to eat. Flowers make beautiful salad garnishes. Leaves can be cooked like spinach.",
	},
	{
		Species:     "Chickweed (Stellaria media)",
		Category:    season.CategoryEdible,
		Confidence:  0.87,
		Description: "Delicate annual herb with tender leaves and small white flowers. Rich in vitamins and minerals, traditionally used for skin conditions.",
		SafetyNotes: "Safe to eat raw or cooked. Best harvested young. Excellent in salads or as a spinach substitute.",
	},
	{
		Species:     "Lamb's Quarters (Chenopodium album)",
		Category:    season.CategoryEdible,
		Confidence:  0.89,
		Description: "Highly nutritious annual plant related to quinoa. More nutritious than spinach with higher protein content, vitamins, and minerals.",
		SafetyNotes: "Safe when properly identified. Contains some oxalic acid - cook to reduce. Avoid if prone to kidney stones.",
	},
	{
		Species:     "Stinging Nettle (Urtica dioica)",
		Category:    season.CategoryEdible,
		Confidence:  0.93,
		Description: "Perennial herb with stinging hairs containing formic acid. Extremely nutritious when cooked, rich in iron, calcium, and vitamins.",
		SafetyNotes: "Must be cooked or dried to remove sting. Wear gloves when harvesting. Excellent for anemia and joint health.",
	},
	{
		Species:     "Wood Sorrel (Oxalis stricta)",
		Category:    season.CategoryEdible,
		Confidence:  0.84,
		Description: "Small plant with clover-like leaves that have a pleasant lemony taste due to oxalic acid. High in vitamin C.",
		SafetyNotes: "Safe in moderation. High oxalic acid content - don't eat in large quantities. Avoid if prone to kidney stones.",
	},
	{
		Species:     "Wild Garlic (Allium vineale)",
		Category:    season.CategoryEdible,
		Confidence:  0.90,
		Description: "Perennial bulb plant with strong garlic odor. All parts edible - bulbs, leaves, and flowers can be used as garlic substitute.",
		SafetyNotes: "Safe when properly identified. Ensure it smells like garlic. Similar-looking plants can be toxic.",
	},
	{
		Species:     "English Ivy (Hedera helix)",
		Category:    season.CategoryInvasive,
		Confidence:  0.94,
		Description: "Aggressive climbing vine that smothers trees and structures. Forms dense ground cover preventing native plant growth.",
		SafetyNotes: "NOT EDIBLE - berries and leaves are toxic. Remove carefully as it can damage building exteriors.",
	},
	{
		Species:     "Common Plantain (Plantago major)",
		Category:    season.CategoryEdible,
		Confidence:  0.86,
		Description: "Perennial herb with medicinal properties. Leaves are edible when young, traditionally used for wound healing.",
		SafetyNotes: "Safe to eat young leaves. Older leaves are tough and fibrous. Excellent poultice for insect bites.",
	},
}
