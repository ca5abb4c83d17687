// Package prompt builds the text sent to the generation service.
package prompt

import (
	"strings"
	"text/template"
)

var languageRules = map[string]string{
	"English": "Generate entirely in English.",
	"Hindi":   "Generate entirely in Hindi (Devanagari script).",
	"Telugu":  "Generate entirely in Telugu script.",
}

var tmpl = template.Must(template.New("prompt").Parse(`You are a professional screenwriter and film production planner.

Project Title:
{{.Title}}

Story Idea:
{{.Idea}}

Language Rules:
{{.Rule}}

Maintain narrative consistency.

OUTPUT STRUCTURE:

SCREENPLAY
(minimum 5 scenes, proper INT/EXT formatting)

CHARACTER PROFILES
(Name, age, background, motivation, conflict, arc)

SOUND DESIGN PLAN
(scene wise)

PRODUCTION PLAN
(location, props, costumes, shoot grouping)
`))

// LanguageRule returns the instruction for language, falling back to English.
func LanguageRule(language string) string {
	if r, ok := languageRules[language]; ok {
		return r
	}
	return languageRules["English"]
}

// Build renders the pre-production prompt for a title, idea and language.
func Build(title, idea, language string) string {
	var b strings.Builder
	// the template is static and the data is plain strings
	_ = tmpl.Execute(&b, struct{ Title, Idea, Rule string }{title, idea, LanguageRule(language)})
	return b.String()
}
