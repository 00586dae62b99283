package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterKSBs(t *testing.T) {
	catalog := DefaultKSBCatalog()

	skills := FilterKSBs(catalog, KSBSkill, "")
	assert.Len(t, skills, 4)
	for _, k := range skills {
		assert.Equal(t, KSBSkill, k.Type)
	}

	// Free-text search matches ids and descriptions, case-insensitively.
	byID := FilterKSBs(catalog, "", "k2")
	assert.Len(t, byID, 1)
	assert.Equal(t, "K2", byID[0].ID)

	byText := FilterKSBs(catalog, KSBBehaviour, "DETAIL")
	assert.Len(t, byText, 1)
	assert.Equal(t, "B3", byText[0].ID)

	assert.Empty(t, FilterKSBs(catalog, KSBKnowledge, "debugging"))
}

func TestDedupeKSBs(t *testing.T) {
	tags := []KSBTag{
		{ID: "S1", Type: KSBSkill},
		{ID: "K1", Type: KSBKnowledge},
		{ID: "S1", Type: KSBSkill},
	}

	deduped := DedupeKSBs(tags)
	assert.Len(t, deduped, 2)
	assert.Equal(t, "S1", deduped[0].ID)
	assert.Equal(t, "K1", deduped[1].ID)
}
