package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"bariatric-gpt/backend/internal/model"
)

// The safety filter is purely mechanical string matching, no model call,
// so the allergen/dislike property holds regardless of generation errors.

const filteredFallback = "I'm sorry - every option I came up with conflicts with your recorded " +
	"allergies or disliked foods. Could you relax a constraint or tell me what you'd like instead?"

// FilterSuggestions removes suggestion items containing a whole-word match
// of any recorded allergy or disliked food. Removed items are reported for
// auditing. If filtering empties every suggestion list, the blocks are
// replaced with a request for relaxed constraints.
func FilterSuggestions(blocks []Block, profile *model.UserProfile) ([]Block, []model.RemovedItem) {
	allergens := compileTerms(profile.Allergies)
	dislikes := compileTerms(profile.DislikedFoods)
	if len(allergens) == 0 && len(dislikes) == 0 {
		return blocks, nil
	}

	var removed []model.RemovedItem
	hadItems := false

	filtered := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind != BlockList {
			filtered = append(filtered, block)
			continue
		}
		hadItems = hadItems || len(block.Items) > 0

		kept := lo.Filter(block.Items, func(item string, _ int) bool {
			if term, hit := matchTerm(item, allergens); hit {
				removed = append(removed, model.RemovedItem{
					Item:   item,
					Reason: fmt.Sprintf("contains allergen %s", term),
				})
				return false
			}
			if term, hit := matchTerm(item, dislikes); hit {
				removed = append(removed, model.RemovedItem{
					Item:   item,
					Reason: fmt.Sprintf("contains disliked food %s", term),
				})
				return false
			}
			return true
		})
		if len(kept) > 0 {
			filtered = append(filtered, Block{Kind: BlockList, Items: kept})
		}
	}

	if hadItems && len(SuggestionItems(filtered)) == 0 {
		return []Block{{Kind: BlockParagraph, Text: filteredFallback}}, removed
	}
	return filtered, removed
}

type compiledTerm struct {
	term string
	re   *regexp.Regexp
}

// compileTerms builds case-insensitive word-boundary matchers with simple
// plural folding: "peanuts" blocks "Peanut butter toast", "cashew" blocks
// "cashews" but not "cashewcream-free".
func compileTerms(terms []string) []compiledTerm {
	compiled := make([]compiledTerm, 0, len(terms))
	for _, term := range lo.Uniq(terms) {
		trimmed := strings.TrimSpace(term)
		if trimmed == "" {
			continue
		}
		base := strings.ToLower(trimmed)
		if strings.HasSuffix(base, "es") {
			base = strings.TrimSuffix(base, "es")
		} else {
			base = strings.TrimSuffix(base, "s")
		}
		if base == "" {
			base = strings.ToLower(trimmed)
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(base) + `(?:es|s)?\b`)
		if err != nil {
			continue
		}
		compiled = append(compiled, compiledTerm{term: trimmed, re: re})
	}
	return compiled
}

func matchTerm(item string, terms []compiledTerm) (string, bool) {
	for _, t := range terms {
		if t.re.MatchString(item) {
			return t.term, true
		}
	}
	return "", false
}
