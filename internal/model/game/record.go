package game

// TimestampLayout formats record timestamps and derives record filenames.
const TimestampLayout = "20060102_150405"

// Record is the artifact persisted once per completed game. It is never
// mutated after creation.
type Record struct {
	ID                     string    `json:"id"`
	Timestamp              string    `json:"timestamp"`
	HumanRole              Slot      `json:"human_role"`
	Username               string    `json:"username"`
	InterrogatorModel      string    `json:"interrogator_model"`
	AIPlayerModel          string    `json:"ai_player_model"`
	AIPlayerMode           string    `json:"ai_player_mode"`
	InterrogatorTranscript []Message `json:"interrogator_transcript"`
	AIPlayerTranscript     []Message `json:"ai_player_transcript"`
}
