package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFreeTextList(t *testing.T) {
	t.Run("Comma Separated", func(t *testing.T) {
		items := SplitFreeTextList("Appendectomy (2015), Tonsillectomy (2010)")
		assert.Equal(t, []string{"Appendectomy (2015)", "Tonsillectomy (2010)"}, items)
	})

	t.Run("Slashes And Newlines", func(t *testing.T) {
		items := SplitFreeTextList("Metformin 500mg\nLisinopril / Aspirin,,")
		assert.Equal(t, []string{"Metformin 500mg", "Lisinopril", "Aspirin"}, items, "empty fragments should be dropped")
	})

	t.Run("Lone Skip Token", func(t *testing.T) {
		assert.Equal(t, []string{}, SplitFreeTextList("none"))
		assert.Equal(t, []string{}, SplitFreeTextList("  Not Sure "), "skip tokens are case-insensitive")
		assert.Equal(t, []string{}, SplitFreeTextList("SKIP"))
	})

	t.Run("Skip Token Among Others Is Kept", func(t *testing.T) {
		assert.Equal(t, []string{"none", "Ibuprofen"}, SplitFreeTextList("none, Ibuprofen"))
	})

	t.Run("Empty Text", func(t *testing.T) {
		assert.Equal(t, []string{}, SplitFreeTextList(""))
		assert.Equal(t, []string{}, SplitFreeTextList(" , \n "))
	})
}

func TestIsCompletionCommand(t *testing.T) {
	for _, text := range []string{"done", "Finish", " STOP "} {
		assert.True(t, IsCompletionCommand(text), "%q should end the survey", text)
	}
	for _, text := range []string{"", "done now", "stopped"} {
		assert.False(t, IsCompletionCommand(text), "%q should not end the survey", text)
	}
}

func TestIsSkipAnswer(t *testing.T) {
	assert.True(t, isSkipAnswer(""))
	assert.True(t, isSkipAnswer("Skip"))
	assert.True(t, isSkipAnswer("NOT SURE"))
	assert.True(t, isSkipAnswer("ｎｏｎｅ"), "full-width letters should fold to none")
	assert.False(t, isSkipAnswer("female"))
}
