package challenge

import "testing"

func TestPickChallengeAction(t *testing.T) {
	tests := map[Category]Action{
		CategoryIdentification: ActionIdentify,
		CategoryReporting:      ActionMapReport,
		CategoryRecipe:         ActionRecipes,
		CategoryOther:          ActionDashboard,
		"":                     ActionDashboard,
		"gardening":            ActionDashboard,
	}
	for category, want := range tests {
		if got := PickChallengeAction(category); got != want {
			t.Errorf("PickChallengeAction(%q) = %q, want %q", category, got, want)
		}
	}
}

func TestResolveIcon(t *testing.T) {
	tests := map[string]string{
		"Trophy":     "trophy",
		"ChefHat":    "chef-hat",
		"TrendingUp": "trending-up",
		" shield ":   "shield",
		"":           DefaultIcon,
		"rocket":     DefaultIcon,
	}
	for name, want := range tests {
		if got := ResolveIcon(name); got != want {
			t.Errorf("ResolveIcon(%q) = %q, want %q", name, got, want)
		}
	}
}
