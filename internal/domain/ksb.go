package domain

import "strings"

type KSBType string

const (
	KSBKnowledge KSBType = "Knowledge"
	KSBSkill     KSBType = "Skill"
	KSBBehaviour KSBType = "Behaviour"
)

// KSBTag is a Knowledge/Skill/Behaviour competency an entry can evidence.
// Entries hold a copy of the tag as selected, not a reference into the
// catalog, so catalog edits never rewrite history.
type KSBTag struct {
	ID          string  `json:"id"`
	Type        KSBType `json:"type"`
	Description string  `json:"description"`
}

// DefaultKSBCatalog is the built-in reference set, used when the remote
// store does not expose a KSB endpoint.
func DefaultKSBCatalog() []KSBTag {
	return []KSBTag{
		{ID: "K1", Type: KSBKnowledge, Description: "Understanding of software development lifecycle"},
		{ID: "K2", Type: KSBKnowledge, Description: "Knowledge of version control systems"},
		{ID: "K3", Type: KSBKnowledge, Description: "Understanding of testing methodologies"},
		{ID: "K4", Type: KSBKnowledge, Description: "Knowledge of agile practices"},
		{ID: "S1", Type: KSBSkill, Description: "Ability to write clean, maintainable code"},
		{ID: "S2", Type: KSBSkill, Description: "Problem-solving and debugging skills"},
		{ID: "S3", Type: KSBSkill, Description: "Communication and collaboration"},
		{ID: "S4", Type: KSBSkill, Description: "Time management and prioritization"},
		{ID: "B1", Type: KSBBehaviour, Description: "Professional attitude and work ethic"},
		{ID: "B2", Type: KSBBehaviour, Description: "Continuous learning mindset"},
		{ID: "B3", Type: KSBBehaviour, Description: "Attention to detail"},
	}
}

// FilterKSBs narrows a catalog by type and a free-text search over id and
// description. An empty type matches all types.
func FilterKSBs(catalog []KSBTag, typ KSBType, query string) []KSBTag {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []KSBTag
	for _, k := range catalog {
		if typ != "" && k.Type != typ {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(k.ID), query) &&
			!strings.Contains(strings.ToLower(k.Description), query) {
			continue
		}
		out = append(out, k)
	}
	return out
}

// DedupeKSBs drops tags with a previously seen id, keeping first occurrence order.
func DedupeKSBs(tags []KSBTag) []KSBTag {
	seen := make(map[string]bool, len(tags))
	var out []KSBTag
	for _, k := range tags {
		if seen[k.ID] {
			continue
		}
		seen[k.ID] = true
		out = append(out, k)
	}
	return out
}
