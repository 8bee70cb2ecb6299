package script

import (
	"regexp"
	"strings"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
)

var (
	titleRe   = regexp.MustCompile(`(?i)Title:\s*(.+)`)
	summaryRe = regexp.MustCompile(`(?is)Summary:\s*(.+?)(?:\n\n|\n[A-Za-z]+:)`)
	scriptRe  = regexp.MustCompile(`(?is)(?:Full Script|Script):\s*(.+)`)
)

// ParseScriptResponse turns a raw model completion into a structured
// script result. Parsing never fails: every field that cannot be matched
// degrades to a documented fallback, so arbitrary input yields a usable
// result.
func ParseScriptResponse(raw string, req podcast.ScriptRequest) podcast.ScriptResult {
	req = normalize(req)

	title := req.Title
	if m := titleRe.FindStringSubmatch(raw); m != nil {
		title = strings.TrimSpace(m[1])
	} else if title == "" {
		title = capitalize(string(req.Category)) + " Podcast"
	}

	summary := ""
	if m := summaryRe.FindStringSubmatch(raw); m != nil {
		summary = strings.TrimSpace(m[1])
	}

	body := raw
	if m := scriptRe.FindStringSubmatch(raw); m != nil {
		body = strings.TrimSpace(m[1])
	}

	segments, duration := extractSegments(body, req)

	return podcast.ScriptResult{
		Title:            title,
		Script:           body,
		Summary:          summary,
		DurationEstimate: duration,
		Segments:         segments,
		Metadata: podcast.ScriptMetadata{
			Category:    req.Category,
			Tone:        req.Tone,
			Model:       req.Model,
			WordCount:   len(strings.Fields(body)),
			GeneratedAt: time.Now(),
		},
	}
}

// extractSegments splits the script body into an ordered segment timeline.
// Start times are a running prefix sum of prior segment durations.
func extractSegments(body string, req podcast.ScriptRequest) ([]podcast.Segment, float64) {
	var segments []podcast.Segment
	currentTime := 0.0
	remainder := body

	if !req.SkipIntro {
		introRe := regexp.MustCompile(`(?is)(` + namesPattern(req.HostNames) + `)[:\s]+(.*?)(?:\n\n|$)`)
		if loc := introRe.FindStringSubmatchIndex(body); loc != nil {
			speaker := strings.TrimSpace(body[loc[2]:loc[3]])
			content := strings.TrimSpace(body[loc[4]:loc[5]])
			intro := podcast.Segment{
				Type:             podcast.SegmentIntro,
				Content:          content,
				Speaker:          speaker,
				DurationEstimate: estimateDuration(content),
				StartTime:        0,
			}
			segments = append(segments, intro)
			currentTime = intro.DurationEstimate
			remainder = body[loc[1]:]
		}
	}

	// main segments: split the remainder on "<SpeakerName>: " markers
	allNames := append(append([]string(nil), req.HostNames...), req.GuestNames...)
	speakerRe := regexp.MustCompile(`(` + namesPattern(allNames) + `):\s+`)
	marks := speakerRe.FindAllStringSubmatchIndex(remainder, -1)
	for i, m := range marks {
		end := len(remainder)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		content := strings.TrimSpace(remainder[m[1]:end])
		if content == "" {
			continue
		}
		seg := podcast.Segment{
			Type:             podcast.SegmentMain,
			Content:          content,
			Speaker:          remainder[m[2]:m[3]],
			DurationEstimate: estimateDuration(content),
			StartTime:        currentTime,
		}
		currentTime += seg.DurationEstimate
		segments = append(segments, seg)
	}

	// reclassify a closing thank-you as the outro in place
	if !req.SkipOutro && len(segments) > 0 {
		last := &segments[len(segments)-1]
		if last.Type != podcast.SegmentOutro && strings.Contains(strings.ToLower(last.Content), "thank") {
			last.Type = podcast.SegmentOutro
		}
	}

	return segments, currentTime
}

// estimateDuration estimates speaking time in minutes at ~150 wpm.
func estimateDuration(text string) float64 {
	return float64(len(strings.Fields(text))) / wordsPerMinute
}

func namesPattern(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	return strings.Join(quoted, "|")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
