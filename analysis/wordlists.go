package analysis

// stopWords are common words excluded from keyword extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "that": true, "have": true, "for": true,
	"not": true, "with": true, "you": true, "this": true, "but": true,
	"his": true, "from": true, "they": true, "she": true, "will": true,
	"would": true, "there": true, "their": true, "what": true, "about": true,
	"which": true, "when": true, "make": true, "like": true, "time": true,
	"just": true, "know": true, "take": true, "into": true, "year": true,
	"your": true, "some": true, "could": true, "them": true, "other": true,
	"than": true, "then": true, "look": true, "only": true, "come": true,
	"over": true, "think": true, "also": true, "back": true, "after": true,
	"work": true, "first": true, "well": true, "even": true, "want": true,
	"because": true, "these": true, "give": true, "most": true,
}

// sentiment word lists. Matching is done on whole lowercase tokens.
var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful",
	"positive", "happy", "joy", "love", "best",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "negative",
	"sad", "angry", "hate", "worst", "problem",
}

// moodLexicon binds a mood label to its indicator words. The declaration
// order decides ties when picking the dominant mood.
type moodLexicon struct {
	name  string
	words []string
}

var moodLexicons = []moodLexicon{
	{"informative", []string{"learn", "know", "understand", "explain", "information", "fact", "research", "study", "discover"}},
	{"entertaining", []string{"fun", "laugh", "joke", "funny", "entertain", "amusing", "comedy", "humor", "story"}},
	{"inspirational", []string{"inspire", "motivate", "achieve", "success", "dream", "goal", "passion", "believe", "overcome"}},
	{"controversial", []string{"debate", "argue", "disagree", "controversy", "opinion", "politics", "dispute", "conflict"}},
	{"educational", []string{"teach", "lesson", "education", "school", "college", "university", "student", "professor", "academic"}},
}
