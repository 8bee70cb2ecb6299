package voice

import (
	"github.com/podcast-maker/podcast-maker/podcast"
)

// Voice describes a synthesis voice. Field names follow the TTS API wire
// format; label fields are populated when the API provides them.
type Voice struct {
	VoiceID     string `json:"voice_id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	PreviewURL  string `json:"preview_url,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Age         string `json:"age,omitempty"`
	Accent      string `json:"accent,omitempty"`
	Language    string `json:"language,omitempty"`
	UseCase     string `json:"useCase,omitempty"`
}

// Voice roles in assignment order.
const (
	RoleMaleHosts    = "male_hosts"
	RoleFemaleHosts  = "female_hosts"
	RoleMaleGuests   = "male_guests"
	RoleFemaleGuests = "female_guests"
)

var roleOrder = []string{RoleMaleHosts, RoleFemaleHosts, RoleMaleGuests, RoleFemaleGuests}

// RecommendedVoices are pre-selected stock voices for podcast roles.
var RecommendedVoices = map[string][]Voice{
	RoleMaleHosts: {
		{VoiceID: "pNInz6obpgDQGcFmaJgB", Name: "Adam"},
		{VoiceID: "ErXwobaYiN019PkySvjV", Name: "Antoni"},
		{VoiceID: "ODq5zmih8GrVes37Dizd", Name: "Josh"},
		{VoiceID: "ZQe5CZNOzWyzPSCn5a3c", Name: "Sam"},
	},
	RoleFemaleHosts: {
		{VoiceID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella"},
		{VoiceID: "MF3mGyEYCl7XYWbV9V6O", Name: "Elli"},
		{VoiceID: "D38z5RcWu1voky8WS1ja", Name: "Grace"},
		{VoiceID: "jBpfuIE2acCO8z3wKNLl", Name: "Rachel"},
	},
	RoleMaleGuests: {
		{VoiceID: "VR6AewLTigWG4xSOukaG", Name: "Arnold"},
		{VoiceID: "yoZ06aMxZJJ28mfd3POQ", Name: "Daniel"},
		{VoiceID: "TxGEqnHWrfWFTfGW9XjX", Name: "Matthew"},
		{VoiceID: "GBv7mTt0atIp3Br8iCZE", Name: "Thomas"},
	},
	RoleFemaleGuests: {
		{VoiceID: "XB0fDUnXU5powFXDhCwa", Name: "Charlotte"},
		{VoiceID: "21m00Tcm4TlvDq8ikWAM", Name: "Freya"},
		{VoiceID: "29vD33N1CtxCmqQRPOHJ", Name: "Dorothy"},
		{VoiceID: "z9fAnlkpzviPz146aGWa", Name: "Glinda"},
	},
}

// allRecommended flattens the recommended voices in role order.
func allRecommended() []Voice {
	var voices []Voice
	for _, role := range roleOrder {
		voices = append(voices, RecommendedVoices[role]...)
	}
	return voices
}

// DefaultVoiceID is the voice used for segments without a mapped speaker.
func DefaultVoiceID() string {
	return RecommendedVoices[RoleMaleHosts][0].VoiceID
}

// MapSpeakersToVoices assigns a recommended voice to each speaker name,
// cycling through the stock voices when there are more speakers than
// voices.
func MapSpeakersToVoices(speakerNames []string) []podcast.SpeakerVoiceMapping {
	voices := allRecommended()
	mappings := make([]podcast.SpeakerVoiceMapping, 0, len(speakerNames))
	for i, name := range speakerNames {
		mappings = append(mappings, podcast.SpeakerVoiceMapping{
			SpeakerName: name,
			VoiceID:     voices[i%len(voices)].VoiceID,
		})
	}
	return mappings
}
