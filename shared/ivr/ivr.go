package ivr

import (
	"fmt"
	"strconv"

	"github.com/twilio/twilio-go/twiml"
)

// Prompt is a resolved voice prompt: a recorded-audio URL when one is
// configured, otherwise text for synthesized speech.
type Prompt struct {
	RecordingURL string
	Text         string
}

// Verbs renders a prompt as a Play verb when a recording exists, falling back
// to a Say verb.
func (p Prompt) Verbs() []twiml.Element {
	if p.RecordingURL != "" {
		return []twiml.Element{&twiml.VoicePlay{Url: p.RecordingURL}}
	}

	return []twiml.Element{&twiml.VoiceSay{Message: p.Text}}
}

func Say(text string) twiml.Element {
	return &twiml.VoiceSay{Message: text}
}

func Play(url string) twiml.Element {
	return &twiml.VoicePlay{Url: url}
}

// GatherDigits plays the nested verbs and collects exactly numDigits DTMF
// digits before posting to action.
func GatherDigits(action string, numDigits int, verbs ...twiml.Element) twiml.Element {
	return &twiml.VoiceGather{
		Input:         "dtmf",
		Action:        action,
		Method:        "POST",
		NumDigits:     strconv.Itoa(numDigits),
		Timeout:       "10",
		InnerElements: verbs,
	}
}

// GatherUntilPound collects a variable-length digit string terminated by #,
// used for multi-digit bed counts.
func GatherUntilPound(action string, verbs ...twiml.Element) twiml.Element {
	return &twiml.VoiceGather{
		Input:         "dtmf",
		Action:        action,
		Method:        "POST",
		FinishOnKey:   "#",
		Timeout:       "10",
		InnerElements: verbs,
	}
}

func Redirect(url string) twiml.Element {
	return &twiml.VoiceRedirect{
		Url:    url,
		Method: "POST",
	}
}

// Record plays a beep and records the caller, posting recording metadata to
// action when done.
func Record(action string, maxLengthSeconds int) twiml.Element {
	return &twiml.VoiceRecord{
		Action:      action,
		Method:      "POST",
		MaxLength:   strconv.Itoa(maxLengthSeconds),
		FinishOnKey: "#",
		PlayBeep:    "true",
	}
}

func DialNumber(number string) twiml.Element {
	return &twiml.VoiceDial{Number: number}
}

func Hangup() twiml.Element {
	return &twiml.VoiceHangup{}
}

// Document renders verbs into a complete TwiML response document.
func Document(verbs ...twiml.Element) (string, error) {
	doc, err := twiml.Voice(verbs)
	if err != nil {
		return "", fmt.Errorf("failed to render call markup: %w", err)
	}

	return doc, nil
}
