package model

import (
	"hostline/shared/model"
)

const (
	TableName  = "audio_config"
	EntityName = "audio_config"

	FieldID        = "id"
	FieldPromptKey = "prompt_key"
)

// AudioConfig customizes one spoken prompt: an uploaded recording wins over
// configured text, which wins over the hardcoded default.
type AudioConfig struct {
	ID           string `db:"id"`
	PromptKey    string `db:"prompt_key"`
	RecordingURL string `db:"recording_url"`
	TTSText      string `db:"tts_text"`
	model.Metadata
}
