package types

// FileType identifies the kind of document a resume was extracted from.
type FileType string

// Supported resume file types.
const (
	FileTypePDF     FileType = "PDF"
	FileTypeImage   FileType = "IMAGE"
	FileTypeUnknown FileType = "UNKNOWN"
)

// Resume represents a candidate's resume with extracted text and skills.
type Resume struct {
	Filename      string   `json:"filename"`
	FileType      FileType `json:"file_type"`
	ExtractedText string   `json:"extracted_text,omitempty"`
	Skills        []Skill  `json:"skills"`
	UserName      string   `json:"user_name,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
}

// AddSkill adds a skill to the resume. If a matching skill already exists its
// frequency is incremented instead of inserting a duplicate.
func (r *Resume) AddSkill(skill Skill) {
	for i := range r.Skills {
		if r.Skills[i].Matches(&skill) {
			r.Skills[i].Frequency++
			return
		}
	}
	r.Skills = append(r.Skills, skill)
}

// HasSkill reports whether the resume contains a skill by name (case-insensitive).
func (r *Resume) HasSkill(name string) bool {
	for i := range r.Skills {
		if r.Skills[i].MatchesName(name) {
			return true
		}
	}
	return false
}

// GetSkill returns the resume's skill matching name, or nil.
func (r *Resume) GetSkill(name string) *Skill {
	for i := range r.Skills {
		if r.Skills[i].MatchesName(name) {
			return &r.Skills[i]
		}
	}
	return nil
}

// TechnicalSkills returns only the technical skills.
func (r *Resume) TechnicalSkills() []Skill {
	var out []Skill
	for _, s := range r.Skills {
		if s.IsTechnical {
			out = append(out, s)
		}
	}
	return out
}

// SoftSkills returns only the soft skills.
func (r *Resume) SoftSkills() []Skill {
	var out []Skill
	for _, s := range r.Skills {
		if !s.IsTechnical {
			out = append(out, s)
		}
	}
	return out
}
