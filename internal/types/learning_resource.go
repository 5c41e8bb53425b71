package types

// Platform identifies where a learning resource is hosted.
type Platform string

// Known learning platforms.
const (
	PlatformUdemy            Platform = "Udemy"
	PlatformCoursera         Platform = "Coursera"
	PlatformYouTube          Platform = "YouTube"
	PlatformPluralsight      Platform = "Pluralsight"
	PlatformLinkedInLearning Platform = "LinkedIn Learning"
	PlatformEdX              Platform = "edX"
	PlatformFreeCodeCamp     Platform = "freeCodeCamp"
	PlatformOther            Platform = "Other"
)

// ParsePlatform maps a stored platform string to a Platform, defaulting to Other.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformUdemy, PlatformCoursera, PlatformYouTube, PlatformPluralsight,
		PlatformLinkedInLearning, PlatformEdX, PlatformFreeCodeCamp:
		return Platform(s)
	default:
		return PlatformOther
	}
}

// DifficultyLevel describes how advanced a learning resource is.
type DifficultyLevel string

// Course difficulty levels.
const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyAdvanced     DifficultyLevel = "Advanced"
	DifficultyAllLevels    DifficultyLevel = "All Levels"
)

// ParseDifficulty maps a stored difficulty string to a DifficultyLevel,
// defaulting to Beginner.
func ParseDifficulty(s string) DifficultyLevel {
	switch DifficultyLevel(s) {
	case DifficultyIntermediate, DifficultyAdvanced, DifficultyAllLevels:
		return DifficultyLevel(s)
	default:
		return DifficultyBeginner
	}
}

// LearningResource represents a course or learning material for one skill.
type LearningResource struct {
	SkillName       string          `json:"skill_name"`
	ResourceTitle   string          `json:"resource_title"`
	ResourceURL     string          `json:"resource_url"`
	Platform        Platform        `json:"platform"`
	DurationWeeks   int             `json:"duration_weeks"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level"`
	Description     string          `json:"description,omitempty"`
	Rating          float64         `json:"rating,omitempty"`
	Price           string          `json:"price"`
}

// IsForBeginners reports whether the resource is suitable for beginners.
func (r *LearningResource) IsForBeginners() bool {
	return r.DifficultyLevel == DifficultyBeginner || r.DifficultyLevel == DifficultyAllLevels
}

// IsFree reports whether the resource costs nothing.
func (r *LearningResource) IsFree() bool {
	switch r.Price {
	case "Free", "free", "$0", "0", "":
		return true
	}
	return false
}
