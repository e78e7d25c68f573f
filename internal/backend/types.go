package backend

// Endpoint paths on the backend origin.
const (
	EndpointConverse = "/converse/"
	EndpointAssist   = "/assist/"
	endpointProgress = "/user/%s/progress"
)

// ConverseRequest is the body sent to /converse/.
type ConverseRequest struct {
	Username    string  `json:"username"`
	UserMessage string  `json:"user_message"`
	RolePlay    *string `json:"role_play"`
}

// ConverseReply holds the consumed fields of a /converse/ reply.
type ConverseReply struct {
	Response string `json:"response"`
}

// AssistRequest is the body sent to /assist/.
type AssistRequest struct {
	Query    string `json:"query"`
	Username string `json:"username"`
}

// AssistReply holds the consumed fields of an /assist/ reply. WordsAffected
// and UpdatedMastery are optional and nil when the backend omits them.
type AssistReply struct {
	Response       string             `json:"response"`
	WordsAffected  []string           `json:"words_affected,omitempty"`
	UpdatedMastery map[string]float64 `json:"updated_mastery,omitempty"`
}

// Progress is the learner summary returned by /user/{username}/progress.
type Progress struct {
	Stats      ProgressStats `json:"stats"`
	WordStatus WordStatus    `json:"word_status"`
}

// ProgressStats are the aggregate counters of a Progress reply.
type ProgressStats struct {
	TotalWords           int     `json:"total_words"`
	MasteredWords        int     `json:"mastered_words"`
	ReinforcementWords   int     `json:"reinforcement_words"`
	CurrentPosition      int     `json:"current_position"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// WordStatus buckets the learner's vocabulary.
type WordStatus struct {
	Mastered           []string `json:"mastered"`
	NeedsReinforcement []string `json:"needs_reinforcement"`
	New                []string `json:"new"`
}
