// Package extraction converts free-form document text into a deduplicated,
// frequency-ranked set of skills. Detection runs two independent detectors
// (dictionary matching and part-of-speech tagging) behind one interface and
// takes the union of their results.
package extraction

import (
	"regexp"
	"sort"
)

// skillVocabulary is the fixed list of known skill terms, in declaration
// order. The order matters: the dictionary detector iterates it sequentially,
// which fixes the encounter order of extracted skills and keeps tie-breaking
// deterministic after the frequency sort.
var skillVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "go", "golang", "rust", "scala", "perl", "r", "matlab",
	"vba", "objective-c", "dart", "elixir", "haskell", "clojure",

	// Web technologies
	"html", "css", "html5", "css3", "sass", "scss", "less", "xml", "json",
	"ajax", "rest", "restful", "graphql", "websocket", "soap",

	// Frontend frameworks
	"react", "angular", "vue", "vue.js", "ember", "backbone", "jquery",
	"bootstrap", "tailwind", "material-ui", "next.js", "nuxt.js", "svelte",

	// Backend frameworks
	"node.js", "express", "django", "flask", "fastapi", "spring", "spring boot",
	"laravel", "symfony", "rails", "ruby on rails", "asp.net", ".net", "dotnet",

	// Databases
	"sql", "mysql", "postgresql", "postgres", "oracle", "mongodb", "redis",
	"cassandra", "dynamodb", "elasticsearch", "sqlite", "mariadb", "neo4j",
	"couchdb", "influxdb",

	// Cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "gitlab", "github actions", "circleci", "travis ci", "terraform",
	"ansible", "puppet", "chef", "vagrant", "heroku", "digitalocean", "nginx",
	"apache",

	// Data science and ML
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
	"scikit-learn", "pandas", "numpy", "scipy", "matplotlib", "seaborn",
	"jupyter", "anaconda", "spark", "hadoop", "hive", "pig", "data analysis",
	"data science", "nlp", "computer vision", "neural networks", "cnn", "rnn",
	"lstm", "bert", "transformers",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin", "cordova",
	"ionic", "swift ui", "jetpack compose",

	// Testing
	"unit testing", "integration testing", "pytest", "junit", "selenium",
	"cypress", "jest", "mocha", "chai", "testng", "cucumber",

	// Version control
	"git", "github", "bitbucket", "svn", "mercurial",

	// Methodologies
	"agile", "scrum", "kanban", "waterfall", "ci/cd", "tdd", "bdd", "devops",

	// Tools
	"linux", "unix", "bash", "shell scripting", "powershell", "vim", "emacs",
	"vscode", "intellij", "eclipse", "pycharm", "postman", "swagger", "jira",
	"confluence", "slack", "trello", "notion",

	// Messaging and data infrastructure
	"kafka", "rabbitmq", "airflow", "flink", "storm", "etl",

	// Security
	"oauth", "jwt", "ssl", "tls", "encryption", "cybersecurity", "penetration testing",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"project management", "time management", "critical thinking",
}

// excludedWords are common resume words that false-positive as skills;
// they are never extracted even when a detector reports them.
var excludedWords = map[string]bool{
	"experience": true, "years": true, "months": true, "customer": true,
	"date": true, "time": true, "work": true, "project": true, "team": true,
	"company": true, "position": true, "role": true, "skills": true,
	"education": true, "university": true, "college": true, "school": true,
	"degree": true, "bachelor": true, "master": true, "phd": true,
}

// skillCategories maps vocabulary terms to display categories. Terms not
// listed default to "Technical".
var skillCategories = map[string]string{
	"python":     "Programming Language",
	"java":       "Programming Language",
	"javascript": "Programming Language",
	"typescript": "Programming Language",
	"c++":        "Programming Language",
	"c#":         "Programming Language",
	"ruby":       "Programming Language",
	"php":        "Programming Language",
	"go":         "Programming Language",
	"golang":     "Programming Language",
	"rust":       "Programming Language",

	"react":       "Frontend Framework",
	"angular":     "Frontend Framework",
	"vue":         "Frontend Framework",
	"django":      "Backend Framework",
	"flask":       "Backend Framework",
	"spring":      "Backend Framework",
	"spring boot": "Backend Framework",
	"express":     "Backend Framework",
	"node.js":     "Backend Framework",

	"sql":        "Database",
	"mysql":      "Database",
	"postgresql": "Database",
	"mongodb":    "Database",
	"redis":      "Database",
	"oracle":     "Database",

	"aws":          "Cloud Platform",
	"azure":        "Cloud Platform",
	"gcp":          "Cloud Platform",
	"google cloud": "Cloud Platform",

	"docker":     "DevOps Tool",
	"kubernetes": "DevOps Tool",
	"jenkins":    "DevOps Tool",
	"terraform":  "DevOps Tool",

	"machine learning": "Machine Learning",
	"tensorflow":       "Machine Learning",
	"pytorch":          "Machine Learning",
	"keras":            "Machine Learning",

	"git": "Version Control",

	"leadership":      "Soft Skill",
	"communication":   "Soft Skill",
	"teamwork":        "Soft Skill",
	"problem solving": "Soft Skill",
}

// softSkills marks vocabulary terms that are soft rather than technical skills.
var softSkills = map[string]bool{
	"leadership": true, "communication": true, "teamwork": true,
	"problem solving": true, "analytical": true, "project management": true,
	"time management": true, "critical thinking": true,
}

// vocabularySet supports O(1) membership checks for the tagger and model detectors.
var vocabularySet = func() map[string]bool {
	set := make(map[string]bool, len(skillVocabulary))
	for _, term := range skillVocabulary {
		set[term] = true
	}
	return set
}()

// termPatterns holds one compiled whole-word pattern per vocabulary term,
// matched against lowercased text.
var termPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillVocabulary))
	for _, term := range skillVocabulary {
		patterns[term] = wholeWordPattern(term)
	}
	return patterns
}()

// wholeWordPattern compiles a word-boundary pattern for a lowercased term.
// Boundaries are only asserted on edges that are word characters, so terms
// like "c++", "c#" and ".net" still match at whitespace and punctuation.
func wholeWordPattern(term string) *regexp.Regexp {
	pat := regexp.QuoteMeta(term)
	if isWordChar(term[0]) {
		pat = `\b` + pat
	}
	if isWordChar(term[len(term)-1]) {
		pat += `\b`
	}
	return regexp.MustCompile(pat)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// CategoryFor returns the display category for a normalized skill key,
// defaulting to "Technical".
func CategoryFor(key string) string {
	if cat, ok := skillCategories[key]; ok {
		return cat
	}
	return "Technical"
}

// IsTechnical reports whether a normalized skill key names a technical skill.
func IsTechnical(key string) bool {
	return !softSkills[key]
}

// IsKnownSkill reports whether a normalized skill key is in the vocabulary.
func IsKnownSkill(key string) bool {
	return vocabularySet[key]
}

// VocabularyTerms returns the vocabulary in sorted order, for diagnostics.
func VocabularyTerms() []string {
	terms := make([]string, 0, len(vocabularySet))
	for term := range vocabularySet {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
