package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	t.Run("numbered list with a lead-in heading", func(t *testing.T) {
		raw := "Here are some high-protein lunch ideas:\n" +
			"1. Grilled chicken salad (32g protein, 350 kcal)\n" +
			"2. Lentil soup (18g protein, 280 kcal)\n\n" +
			"Remember to eat slowly and stop when full."

		blocks := ParseBlocks(raw)

		require.Len(t, blocks, 3)
		assert.Equal(t, BlockHeading, blocks[0].Kind)
		assert.Equal(t, "Here are some high-protein lunch ideas", blocks[0].Text)
		assert.Equal(t, BlockList, blocks[1].Kind)
		assert.Equal(t, []string{
			"Grilled chicken salad (32g protein, 350 kcal)",
			"Lentil soup (18g protein, 280 kcal)",
		}, blocks[1].Items)
		assert.Equal(t, BlockParagraph, blocks[2].Kind)
	})

	t.Run("markdown heading and bullets", func(t *testing.T) {
		raw := "## Snack ideas\n- Apple slices\n- Cottage cheese"

		blocks := ParseBlocks(raw)

		require.Len(t, blocks, 2)
		assert.Equal(t, BlockHeading, blocks[0].Kind)
		assert.Equal(t, "Snack ideas", blocks[0].Text)
		assert.Equal(t, []string{"Apple slices", "Cottage cheese"}, blocks[1].Items)
	})

	t.Run("plain prose stays one paragraph per blank line", func(t *testing.T) {
		raw := "Protein helps healing\nafter surgery.\n\nAim for 60-80g per day."

		blocks := ParseBlocks(raw)

		require.Len(t, blocks, 2)
		assert.Equal(t, "Protein helps healing after surgery.", blocks[0].Text)
		assert.Equal(t, "Aim for 60-80g per day.", blocks[1].Text)
	})
}

func TestRenderPlainAndMarkdownStayInSync(t *testing.T) {
	blocks := []Block{
		{Kind: BlockHeading, Text: "Lunch ideas"},
		{Kind: BlockList, Items: []string{"Chicken salad", "Lentil soup"}},
		{Kind: BlockParagraph, Text: "Eat slowly."},
	}

	plain := RenderPlain(blocks)
	markdown := RenderMarkdown(blocks)

	assert.Equal(t, "Lunch ideas\n\n1) Chicken salad\n2) Lentil soup\n\nEat slowly.", plain)
	assert.Equal(t, "## Lunch ideas\n\n1. Chicken salad\n2. Lentil soup\n\nEat slowly.", markdown)
}

func TestRenderPlain_ListSurvivesRoundTripThroughPreprocessor(t *testing.T) {
	// The plain rendering is what lands in the conversation log, so the
	// next turn's ordinal resolution must parse it.
	blocks := []Block{{Kind: BlockList, Items: []string{"Chicken salad", "Vegetable quinoa bowl", "Lentil soup"}}}
	plain := RenderPlain(blocks)

	result := PreprocessMessage("the second option", plain)

	assert.True(t, result.Resolved)
	assert.Equal(t, "Vegetable quinoa bowl", result.Message)
}

func TestSuggestionItems(t *testing.T) {
	blocks := []Block{
		{Kind: BlockParagraph, Text: "intro"},
		{Kind: BlockList, Items: []string{"a", "b"}},
		{Kind: BlockList, Items: []string{"c"}},
	}

	assert.Equal(t, []string{"a", "b", "c"}, SuggestionItems(blocks))
	assert.Empty(t, SuggestionItems([]Block{{Kind: BlockParagraph, Text: "prose"}}))
}
