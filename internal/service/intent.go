package service

import "strings"

// Intent is the category of a user request. It governs which downstream
// behavior the turn invokes; it never produces user-facing text itself.
type Intent string

const (
	IntentGroceryList      Intent = "grocery_list"
	IntentCalorieBreakdown Intent = "calorie_breakdown"
	IntentRecipe           Intent = "recipe"
	IntentProfileQuery     Intent = "profile_query"
	IntentMealSuggestion   Intent = "meal_suggestion"
	IntentGeneralGuidance  Intent = "general_guidance"
)

// IntentContext carries the lightweight signals available alongside the message.
type IntentContext struct {
	PatientIDPresent    bool
	PriorHadSuggestions bool
}

var intentKeywords = []struct {
	intent Intent
	terms  []string
}{
	{IntentGroceryList, []string{"grocery", "groceries", "shopping list", "what should i buy"}},
	{IntentCalorieBreakdown, []string{"calorie", "calories", "kcal", "breakdown", "macros", "how much protein have i"}},
	{IntentRecipe, []string{"recipe", "how do i make", "how to make", "how do i cook", "how to cook"}},
	{IntentProfileQuery, []string{
		"my weight", "my protein", "my surgery", "my profile", "my progress", "my bmi", "my meals",
		"this patient", "their weight", "current weight", "vitals", "labs", "records", "chart",
	}},
	{IntentMealSuggestion, []string{
		"suggest", "suggestion", "what should i eat", "what can i eat", "meal idea", "meal ideas",
		"breakfast", "lunch", "dinner", "snack",
	}},
}

// ClassifyIntent buckets the preprocessed message into exactly one
// category. Plain keyword heuristics; ambiguity defaults to
// general_guidance.
func ClassifyIntent(message string, intentCtx IntentContext) Intent {
	lower := strings.ToLower(message)

	for _, bucket := range intentKeywords {
		for _, term := range bucket.terms {
			if strings.Contains(lower, term) {
				return bucket.intent
			}
		}
	}

	// A bare follow-up like "another" or "more options" right after a
	// suggestion list is a request for more suggestions.
	if intentCtx.PriorHadSuggestions {
		for _, term := range []string{"another", "something else", "more options", "other options"} {
			if strings.Contains(lower, term) {
				return IntentMealSuggestion
			}
		}
	}

	return IntentGeneralGuidance
}

// needsPatientData reports whether the classified intent consults the
// patient record when one is available.
func needsPatientData(intent Intent) bool {
	return intent == IntentProfileQuery || intent == IntentCalorieBreakdown
}
