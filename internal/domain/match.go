package domain

// MatchDirection says whether a candidate pairs one of the current user's
// offered skills with a counterpart's required skill (teach) or the other
// way around (learn).
type MatchDirection string

const (
	MatchDirectionTeach MatchDirection = "teach"
	MatchDirectionLearn MatchDirection = "learn"
)

// MatchCandidate is a scored exchange suggestion between two users' skills.
// It is derived fresh on every match request and never persisted.
type MatchCandidate struct {
	MySkill        *Skill         `json:"my_skill"`
	TheirSkill     *Skill         `json:"their_skill"`
	Score          float64        `json:"score"`
	Interpretation string         `json:"interpretation"`
	Direction      MatchDirection `json:"direction"`
}

// SkillPair is one pairwise similarity question for a similarity provider.
type SkillPair struct {
	NameA string `json:"skill_a"`
	NameB string `json:"skill_b"`
}

// SimilarityScore is the provider's answer for one pair, in input order.
type SimilarityScore struct {
	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`
}
