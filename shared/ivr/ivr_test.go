package ivr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostline/shared/ivr"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		digits  string
		max     int
		want    int
		wantErr bool
	}{
		{
			name:   "single digit",
			digits: "3",
			max:    9,
			want:   3,
		},
		{
			name:   "multi digit with pound",
			digits: "12#",
			max:    20,
			want:   12,
		},
		{
			name:    "zero rejected",
			digits:  "0",
			max:     9,
			wantErr: true,
		},
		{
			name:    "above max rejected",
			digits:  "21",
			max:     20,
			wantErr: true,
		},
		{
			name:    "negative rejected",
			digits:  "-3",
			max:     9,
			wantErr: true,
		},
		{
			name:    "empty rejected",
			digits:  "",
			max:     9,
			wantErr: true,
		},
		{
			name:    "non numeric rejected",
			digits:  "*",
			max:     9,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := ivr.ParseCount(tt.digits, tt.max)

			if tt.wantErr {
				assert.ErrorIs(t, err, ivr.ErrCountOutOfRange)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestPromptVerbsPrefersRecording(t *testing.T) {
	doc, err := ivr.Document(ivr.Prompt{RecordingURL: "https://cdn.example.org/welcome.mp3", Text: "Welcome"}.Verbs()...)
	assert.NoError(t, err)
	assert.Contains(t, doc, "<Play>https://cdn.example.org/welcome.mp3</Play>")
	assert.NotContains(t, doc, "Welcome")
}

func TestPromptVerbsFallsBackToSay(t *testing.T) {
	doc, err := ivr.Document(ivr.Prompt{Text: "Welcome"}.Verbs()...)
	assert.NoError(t, err)
	assert.Contains(t, doc, "Welcome")
	assert.NotContains(t, doc, "<Play>")
}

func TestGatherDocument(t *testing.T) {
	doc, err := ivr.Document(
		ivr.GatherDigits("/voice/availability?step=process_response", 1, ivr.Say("Press 1 if you can host")),
		ivr.Say("We did not receive a selection. Goodbye."),
		ivr.Hangup(),
	)
	assert.NoError(t, err)
	assert.Contains(t, doc, `numDigits="1"`)
	assert.Contains(t, doc, "Hangup")
	assert.Contains(t, doc, "process_response")
}
