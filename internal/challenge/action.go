package challenge

import "strings"

// Action is the navigation target a client should open to work on a challenge.
type Action string

const (
	ActionIdentify  Action = "identify"
	ActionMapReport Action = "map-report"
	ActionRecipes   Action = "recipes"
	ActionDashboard Action = "dashboard"
)

var categoryActions = map[Category]Action{
	CategoryIdentification: ActionIdentify,
	CategoryReporting:      ActionMapReport,
	CategoryRecipe:         ActionRecipes,
}

// PickChallengeAction maps a challenge category to its navigation target, defaulting to the dashboard.
func PickChallengeAction(category Category) Action {
	if action, ok := categoryActions[category]; ok {
		return action
	}
	return ActionDashboard
}

// DefaultIcon is used for icon references outside the known set.
const DefaultIcon = "trophy"

var knownIcons = map[string]string{
	"trophy":      "trophy",
	"target":      "target",
	"shield":      "shield",
	"flame":       "flame",
	"award":       "award",
	"chefhat":     "chef-hat",
	"chef-hat":    "chef-hat",
	"trendingup":  "trending-up",
	"trending-up": "trending-up",
	"star":        "star",
	"crown":       "crown",
}

// ResolveIcon normalizes a stored icon reference, e.g. "ChefHat" becomes "chef-hat".
func ResolveIcon(name string) string {
	if icon, ok := knownIcons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return DefaultIcon
}
