package podcast

import "time"

// Category identifies the subject area of a podcast.
type Category string

// Supported podcast categories.
const (
	CategoryTech            Category = "tech"
	CategoryComedy          Category = "comedy"
	CategoryNews            Category = "news"
	CategoryEducation       Category = "education"
	CategoryBusiness        Category = "business"
	CategoryHealth          Category = "health"
	CategoryScience         Category = "science"
	CategoryArts            Category = "arts"
	CategorySports          Category = "sports"
	CategoryEntertainment   Category = "entertainment"
	CategoryHistory         Category = "history"
	CategoryTrueCrime       Category = "true crime"
	CategoryFiction         Category = "fiction"
	CategoryPolitics        Category = "politics"
	CategoryPhilosophy      Category = "philosophy"
	CategorySelfImprovement Category = "self-improvement"
	CategoryInterview       Category = "interview"
)

// Tone identifies the delivery style of a podcast.
type Tone string

// Supported podcast tones.
const (
	ToneCasual         Tone = "casual"
	ToneProfessional   Tone = "professional"
	ToneHumorous       Tone = "humorous"
	ToneSerious        Tone = "serious"
	ToneEducational    Tone = "educational"
	ToneInspirational  Tone = "inspirational"
	ToneConversational Tone = "conversational"
	ToneDramatic       Tone = "dramatic"
	ToneInvestigative  Tone = "investigative"
)

// SegmentType classifies a span of the script.
type SegmentType string

// Segment types in script order.
const (
	SegmentIntro      SegmentType = "intro"
	SegmentMain       SegmentType = "main"
	SegmentAd         SegmentType = "ad"
	SegmentTransition SegmentType = "transition"
	SegmentOutro      SegmentType = "outro"
)

// Segment is a contiguous span of script attributed to one speaker.
// DurationEstimate and StartTime are in minutes; start times form a prefix
// sum of the preceding segment durations.
type Segment struct {
	Type             SegmentType `json:"type"`
	Content          string      `json:"content"`
	Speaker          string      `json:"speaker,omitempty"`
	DurationEstimate float64     `json:"durationEstimate,omitempty"`
	StartTime        float64     `json:"startTime"`
}

// ScriptRequest describes a script generation request. The zero value of
// SkipIntro and SkipOutro means both an intro and an outro are requested.
type ScriptRequest struct {
	Category          Category
	Title             string
	LengthMinutes     int
	Tone              Tone
	AdditionalContext string
	Model             string
	HostNames         []string
	GuestNames        []string
	SkipIntro         bool
	SkipOutro         bool
	IncludeAds        bool
	TargetAudience    string
	MaxRetries        int
}

// ScriptMetadata records how a script was generated.
type ScriptMetadata struct {
	Category    Category  `json:"category"`
	Tone        Tone      `json:"tone"`
	Model       string    `json:"model"`
	WordCount   int       `json:"wordCount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ScriptResult is a parsed, generated podcast script. DurationEstimate is
// in minutes, derived from word count at the assumed speaking rate.
type ScriptResult struct {
	Title            string         `json:"title"`
	Script           string         `json:"script"`
	Summary          string         `json:"summary"`
	DurationEstimate float64        `json:"durationEstimate"`
	Segments         []Segment      `json:"segments"`
	Metadata         ScriptMetadata `json:"metadata"`
}

// VoiceSettings tunes a synthesis voice. Field names follow the TTS API
// wire format.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// SpeakerVoiceMapping binds a speaker name to a synthesis voice. Speaker
// names are matched case-insensitively.
type SpeakerVoiceMapping struct {
	SpeakerName   string         `json:"speakerName"`
	VoiceID       string         `json:"voiceId"`
	VoiceSettings *VoiceSettings `json:"voiceSettings,omitempty"`
}

// AudioFormat identifies the synthesized audio encoding.
type AudioFormat string

// Supported audio output formats.
const (
	FormatMP3      AudioFormat = "mp3"
	FormatPCM      AudioFormat = "pcm"
	FormatPCM24000 AudioFormat = "pcm_24000"
	FormatPCM44100 AudioFormat = "pcm_44100"
	FormatWAV      AudioFormat = "wav"
)

// SegmentAudio pairs a script segment with its synthesized audio. Duration
// and StartTime are in seconds, estimated from byte length.
type SegmentAudio struct {
	Segment   Segment `json:"segment"`
	Audio     []byte  `json:"-"`
	Duration  float64 `json:"duration"`
	StartTime float64 `json:"startTime"`
}

// SpeakerAssignment records which voice spoke for a speaker name.
type SpeakerAssignment struct {
	Name    string `json:"name"`
	VoiceID string `json:"voiceId"`
}

// AudioMetadata records how a podcast's audio was produced.
type AudioMetadata struct {
	Format      AudioFormat         `json:"format"`
	Model       string              `json:"model"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Speakers    []SpeakerAssignment `json:"speakers"`
}

// AudioAssemblyResult is the outcome of assembling a full podcast from
// per-segment synthesis. The segment timeline here is reconstructed from
// estimated audio durations and is independent of the script timeline.
type AudioAssemblyResult struct {
	FullAudio     []byte         `json:"-"`
	SegmentAudios []SegmentAudio `json:"segmentAudios"`
	TotalDuration float64        `json:"totalDuration"`
	Metadata      AudioMetadata  `json:"metadata"`
}

// ContentRating is an ordinal maturity classification.
type ContentRating string

// Content ratings in ascending order of maturity.
const (
	RatingG    ContentRating = "G"
	RatingPG   ContentRating = "PG"
	RatingPG13 ContentRating = "PG-13"
	RatingR    ContentRating = "R"
	RatingNC17 ContentRating = "NC-17"
)

// Topic is a ranked subject extracted from a script.
type Topic struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// SentimentScores is the sentiment distribution of a script. The three
// fractions sum to one.
type SentimentScores struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Overall  string  `json:"overall"`
}

// MoodScores is the heuristic mood distribution of a script.
type MoodScores struct {
	Informative   float64 `json:"informative"`
	Entertaining  float64 `json:"entertaining"`
	Inspirational float64 `json:"inspirational"`
	Controversial float64 `json:"controversial"`
	Educational   float64 `json:"educational"`
	Overall       string  `json:"overall"`
}

// Complexity describes script difficulty.
type Complexity struct {
	VocabularyLevel    string  `json:"vocabularyLevel"`
	SentenceComplexity string  `json:"sentenceComplexity"`
	TechnicalTerms     int     `json:"technicalTerms"`
	ReadabilityScore   float64 `json:"readabilityScore"`
}

// ContentAnalysis is the full heuristic analysis of a script.
type ContentAnalysis struct {
	Topics        []Topic            `json:"topics"`
	Sentiment     SentimentScores    `json:"sentiment"`
	Mood          MoodScores         `json:"mood"`
	Complexity    Complexity         `json:"complexity"`
	AudienceMatch map[string]float64 `json:"audienceMatch"`
}

// Metadata is the descriptive metadata of a podcast record.
type Metadata struct {
	Category        Category         `json:"category"`
	Subcategories   []string         `json:"subcategories"`
	Tone            Tone             `json:"tone"`
	ContentRating   ContentRating    `json:"contentRating"`
	LanguageCode    string           `json:"languageCode"`
	TargetAudience  []string         `json:"targetAudience"`
	ContentAnalysis *ContentAnalysis `json:"contentAnalysis,omitempty"`
	Transcript      string           `json:"transcript,omitempty"`
	Speakers        []string         `json:"speakers"`
	Keywords        []string         `json:"keywords"`
	AIGenerated     bool             `json:"aiGenerated"`
	SourceModel     string           `json:"sourceModel,omitempty"`
	VoiceModel      string           `json:"voiceModel,omitempty"`
}

// Stats tracks engagement counters for a podcast.
type Stats struct {
	Plays             int       `json:"plays"`
	Likes             int       `json:"likes"`
	Shares            int       `json:"shares"`
	Comments          int       `json:"comments"`
	Downloads         int       `json:"downloads"`
	AverageListenTime float64   `json:"averageListenTime"`
	CompletionRate    float64   `json:"completionRate"`
	LastPlayed        time.Time `json:"lastPlayed,omitzero"`
}

// Podcast is a persisted podcast record. Duration is in seconds.
type Podcast struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	AudioURL      string    `json:"audioUrl,omitempty"`
	ScriptID      string    `json:"scriptId,omitempty"`
	AudioID       string    `json:"audioId,omitempty"`
	Duration      float64   `json:"duration"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	PublishedAt   time.Time `json:"publishedAt,omitzero"`
	IsPublished   bool      `json:"isPublished"`
	IsPrivate     bool      `json:"isPrivate"`
	Metadata      Metadata  `json:"metadata"`
	Tags          []string  `json:"tags"`
	Stats         Stats     `json:"stats"`
}

// PlaylistType classifies how a playlist came to exist.
type PlaylistType string

// Playlist types.
const (
	PlaylistUserCreated   PlaylistType = "user-created"
	PlaylistAutoGenerated PlaylistType = "auto-generated"
	PlaylistRecommended   PlaylistType = "recommended"
	PlaylistTrending      PlaylistType = "trending"
	PlaylistFeatured      PlaylistType = "featured"
	PlaylistMoodBased     PlaylistType = "mood-based"
	PlaylistTopicBased    PlaylistType = "topic-based"
	PlaylistSystem        PlaylistType = "system"
)

// Playlist is an ordered collection of podcast ids. Member ids are unique.
type Playlist struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	CoverImageURL    string       `json:"coverImageUrl,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	PodcastIDs       []string     `json:"podcastIds"`
	IsPublic         bool         `json:"isPublic"`
	CreatorID        string       `json:"creatorId"`
	Type             PlaylistType `json:"type"`
	Tags             []string     `json:"tags"`
	Category         string       `json:"category,omitempty"`
	AIGenerated      bool         `json:"aiGenerated"`
	GenerationPrompt string       `json:"generationPrompt,omitempty"`
}
