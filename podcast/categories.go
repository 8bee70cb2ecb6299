package podcast

import "strings"

// CategoryDescriptions maps each category to the phrasing used in prompts.
var CategoryDescriptions = map[Category]string{
	CategoryTech:            "technology, digital trends, and innovations",
	CategoryComedy:          "humor, jokes, and entertaining stories",
	CategoryNews:            "current events, breaking stories, and analysis",
	CategoryEducation:       "learning, teaching, and educational content",
	CategoryBusiness:        "entrepreneurship, finance, and professional development",
	CategoryHealth:          "wellness, fitness, mental health, and medical topics",
	CategoryScience:         "scientific discoveries, research, and explanations",
	CategoryArts:            "creative works, music, literature, and visual arts",
	CategorySports:          "athletic competitions, teams, players, and analysis",
	CategoryEntertainment:   "movies, TV shows, celebrities, and pop culture",
	CategoryHistory:         "historical events, figures, and analysis of the past",
	CategoryTrueCrime:       "real criminal cases, investigations, and legal proceedings",
	CategoryFiction:         "storytelling, narrative fiction, and creative tales",
	CategoryPolitics:        "political discourse, policy, and governmental affairs",
	CategoryPhilosophy:      "philosophical concepts, ethics, and deep thinking",
	CategorySelfImprovement: "personal development, productivity, and growth",
	CategoryInterview:       "conversations with guests, Q&A format, and discussions",
}

// ToneDescriptions maps each tone to the phrasing used in prompts.
var ToneDescriptions = map[Tone]string{
	ToneCasual:         "relaxed, informal, and conversational",
	ToneProfessional:   "formal, authoritative, and polished",
	ToneHumorous:       "funny, witty, and entertaining",
	ToneSerious:        "solemn, earnest, and straightforward",
	ToneEducational:    "informative, instructive, and clear",
	ToneInspirational:  "motivating, uplifting, and encouraging",
	ToneConversational: "dialogue-heavy, natural, and engaging",
	ToneDramatic:       "intense, emotional, and captivating",
	ToneInvestigative:  "probing, analytical, and detailed",
}

// ContentRatingDescriptions explains each content rating.
var ContentRatingDescriptions = map[ContentRating]string{
	RatingG:    "Suitable for all audiences, contains no objectionable material",
	RatingPG:   "Parental guidance suggested, may contain mild language or themes",
	RatingPG13: "May be inappropriate for children under 13, contains moderate language or themes",
	RatingR:    "Contains adult themes, strong language, or intense situations",
	RatingNC17: "Adults only, contains explicit content not suitable for minors",
}

var ratingOrder = []ContentRating{RatingG, RatingPG, RatingPG13, RatingR, RatingNC17}

// RatingIndex returns the ordinal position of a rating in the
// G < PG < PG-13 < R < NC-17 order, or -1 for an unknown rating.
func RatingIndex(r ContentRating) int {
	for i, known := range ratingOrder {
		if known == r {
			return i
		}
	}
	return -1
}

var categoryOrder = []Category{
	CategoryTech, CategoryComedy, CategoryNews, CategoryEducation,
	CategoryBusiness, CategoryHealth, CategoryScience, CategoryArts,
	CategorySports, CategoryEntertainment, CategoryHistory, CategoryTrueCrime,
	CategoryFiction, CategoryPolitics, CategoryPhilosophy,
	CategorySelfImprovement, CategoryInterview,
}

var toneOrder = []Tone{
	ToneCasual, ToneProfessional, ToneHumorous, ToneSerious,
	ToneEducational, ToneInspirational, ToneConversational, ToneDramatic,
	ToneInvestigative,
}

// Categories returns all categories in their declared order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// Tones returns all tones in their declared order.
func Tones() []Tone {
	return append([]Tone(nil), toneOrder...)
}

// Option is a selectable category or tone with a display name.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryOptions returns all categories with display names and
// descriptions, for presenting a category picker.
func CategoryOptions() []Option {
	opts := make([]Option, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		opts = append(opts, Option{ID: string(c), Name: capitalize(string(c)), Description: CategoryDescriptions[c]})
	}
	return opts
}

// ToneOptions returns all tones with display names and descriptions.
func ToneOptions() []Option {
	opts := make([]Option, 0, len(toneOrder))
	for _, t := range toneOrder {
		opts = append(opts, Option{ID: string(t), Name: capitalize(string(t)), Description: ToneDescriptions[t]})
	}
	return opts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Subcategory is a named subdivision of a curated category.
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryInfo is a curated category with presentation metadata and
// subcategories used for content categorization.
type CategoryInfo struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	IconName      string        `json:"iconName"`
	Color         string        `json:"color"`
	Subcategories []Subcategory `json:"subcategories"`
}

// CuratedCategories is the curated category table with subcategories.
// Table ids use underscores, so some Category values (such as "true crime")
// have no curated entry.
var CuratedCategories = []CategoryInfo{
	{
		ID: "tech", Name: "Technology",
		Description: "Podcasts about technology, digital trends, and innovations",
		IconName:    "computer", Color: "#2196F3",
		Subcategories: []Subcategory{
			{ID: "ai", Name: "Artificial Intelligence"},
			{ID: "programming", Name: "Programming"},
			{ID: "gadgets", Name: "Gadgets & Hardware"},
			{ID: "startups", Name: "Startups & Entrepreneurship"},
			{ID: "future", Name: "Future Tech"},
		},
	},
	{
		ID: "comedy", Name: "Comedy",
		Description: "Funny and entertaining podcasts to brighten your day",
		IconName:    "sentiment_very_satisfied", Color: "#FF9800",
		Subcategories: []Subcategory{
			{ID: "standup", Name: "Stand-up Comedy"},
			{ID: "improv", Name: "Improv & Sketches"},
			{ID: "satire", Name: "Satire & Parody"},
			{ID: "panel", Name: "Comedy Panels"},
			{ID: "storytelling", Name: "Comedic Storytelling"},
		},
	},
	{
		ID: "news", Name: "News & Politics",
		Description: "Stay informed with the latest news and political analysis",
		IconName:    "public", Color: "#F44336",
		Subcategories: []Subcategory{
			{ID: "daily", Name: "Daily News"},
			{ID: "politics", Name: "Politics"},
			{ID: "global", Name: "Global Affairs"},
			{ID: "business_news", Name: "Business News"},
			{ID: "analysis", Name: "In-depth Analysis"},
		},
	},
	{
		ID: "education", Name: "Education",
		Description: "Learn something new with educational podcasts",
		IconName:    "school", Color: "#4CAF50",
		Subcategories: []Subcategory{
			{ID: "language", Name: "Language Learning"},
			{ID: "science_ed", Name: "Science Education"},
			{ID: "history_ed", Name: "History Lessons"},
			{ID: "how_to", Name: "How-To & Tutorials"},
			{ID: "academic", Name: "Academic Topics"},
		},
	},
	{
		ID: "business", Name: "Business",
		Description: "Insights on business, finance, and professional growth",
		IconName:    "business_center", Color: "#795548",
		Subcategories: []Subcategory{
			{ID: "entrepreneurship", Name: "Entrepreneurship"},
			{ID: "marketing", Name: "Marketing"},
			{ID: "finance", Name: "Finance & Investing"},
			{ID: "careers", Name: "Careers & Leadership"},
			{ID: "interviews", Name: "Business Interviews"},
		},
	},
	{
		ID: "health", Name: "Health & Wellness",
		Description: "Podcasts about physical and mental wellbeing",
		IconName:    "favorite", Color: "#E91E63",
		Subcategories: []Subcategory{
			{ID: "fitness", Name: "Fitness & Exercise"},
			{ID: "nutrition", Name: "Nutrition & Diet"},
			{ID: "mental_health", Name: "Mental Health"},
			{ID: "meditation", Name: "Meditation & Mindfulness"},
			{ID: "medical", Name: "Medical Topics"},
		},
	},
	{
		ID: "science", Name: "Science",
		Description: "Explore the wonders of science and discovery",
		IconName:    "science", Color: "#9C27B0",
		Subcategories: []Subcategory{
			{ID: "physics", Name: "Physics & Astronomy"},
			{ID: "biology", Name: "Biology & Nature"},
			{ID: "psychology", Name: "Psychology"},
			{ID: "environment", Name: "Environment & Climate"},
			{ID: "research", Name: "Latest Research"},
		},
	},
	{
		ID: "arts", Name: "Arts & Culture",
		Description: "Celebrate creativity, arts, and cultural topics",
		IconName:    "palette", Color: "#3F51B5",
		Subcategories: []Subcategory{
			{ID: "music", Name: "Music & Musicians"},
			{ID: "film", Name: "Film & Cinema"},
			{ID: "literature", Name: "Books & Literature"},
			{ID: "visual_arts", Name: "Visual Arts"},
			{ID: "performing_arts", Name: "Performing Arts"},
		},
	},
	{
		ID: "sports", Name: "Sports",
		Description: "Coverage of sports, athletics, and competitive events",
		IconName:    "sports_basketball", Color: "#FF5722",
		Subcategories: []Subcategory{
			{ID: "football", Name: "Football"},
			{ID: "basketball", Name: "Basketball"},
			{ID: "baseball", Name: "Baseball"},
			{ID: "soccer", Name: "Soccer"},
			{ID: "other_sports", Name: "Other Sports"},
		},
	},
	{
		ID: "true_crime", Name: "True Crime",
		Description: "Real crime stories, investigations, and mysteries",
		IconName:    "gavel", Color: "#607D8B",
		Subcategories: []Subcategory{
			{ID: "investigations", Name: "Investigations"},
			{ID: "mysteries", Name: "Unsolved Mysteries"},
			{ID: "criminal_justice", Name: "Criminal Justice"},
			{ID: "historical_crimes", Name: "Historical Crimes"},
			{ID: "forensics", Name: "Forensic Analysis"},
		},
	},
	{
		ID: "fiction", Name: "Fiction & Storytelling",
		Description: "Immersive fictional stories and narrative podcasts",
		IconName:    "auto_stories", Color: "#009688",
		Subcategories: []Subcategory{
			{ID: "drama", Name: "Drama"},
			{ID: "scifi", Name: "Science Fiction"},
			{ID: "fantasy", Name: "Fantasy"},
			{ID: "horror", Name: "Horror"},
			{ID: "audio_drama", Name: "Audio Drama"},
		},
	},
	{
		ID: "self_improvement", Name: "Self Improvement",
		Description: "Personal development, productivity, and growth",
		IconName:    "psychology", Color: "#00BCD4",
		Subcategories: []Subcategory{
			{ID: "productivity", Name: "Productivity"},
			{ID: "motivation", Name: "Motivation"},
			{ID: "habits", Name: "Habits & Routines"},
			{ID: "mindset", Name: "Mindset"},
			{ID: "life_skills", Name: "Life Skills"},
		},
	},
}

// CategoryByID looks up a curated category by its exact table id.
func CategoryByID(id string) (CategoryInfo, bool) {
	for _, info := range CuratedCategories {
		if info.ID == id {
			return info, true
		}
	}
	return CategoryInfo{}, false
}
