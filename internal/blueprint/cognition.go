package blueprint

import "strings"

// DefaultMBTI is assumed when a request carries no usable MBTI type.
const DefaultMBTI = "INFJ"

// Cognition is the MBTI profile echoed into a blueprint. Assumed is set
// when the request gave no four-letter type and DefaultMBTI was used.
type Cognition struct {
	Type              string   `json:"type" yaml:"type" toml:"type"`
	CoreKeywords      []string `json:"core_keywords" yaml:"core_keywords" toml:"core_keywords"`
	DominantFunction  string   `json:"dominant_function" yaml:"dominant_function" toml:"dominant_function"`
	AuxiliaryFunction string   `json:"auxiliary_function" yaml:"auxiliary_function" toml:"auxiliary_function"`
	Assumed           bool     `json:"assumed,omitempty" yaml:"assumed,omitempty" toml:"assumed,omitempty"`
}

var cognitiveFunctions = map[string]string{
	"Ni": "Introverted Intuition (Ni)",
	"Ne": "Extraverted Intuition (Ne)",
	"Si": "Introverted Sensing (Si)",
	"Se": "Extraverted Sensing (Se)",
	"Ti": "Introverted Thinking (Ti)",
	"Te": "Extraverted Thinking (Te)",
	"Fi": "Introverted Feeling (Fi)",
	"Fe": "Extraverted Feeling (Fe)",
}

type mbtiEntry struct {
	keywords            []string
	dominant, auxiliary string
}

var mbtiTypes = map[string]mbtiEntry{
	"INFJ": {[]string{"Insightful", "Visionary", "Complex"}, "Ni", "Fe"},
	"INTJ": {[]string{"Strategic", "Independent", "Decisive"}, "Ni", "Te"},
	"INFP": {[]string{"Idealistic", "Empathetic", "Creative"}, "Fi", "Ne"},
	"INTP": {[]string{"Logical", "Curious", "Abstract"}, "Ti", "Ne"},
	"ISFJ": {[]string{"Loyal", "Attentive", "Dependable"}, "Si", "Fe"},
	"ISTJ": {[]string{"Thorough", "Practical", "Responsible"}, "Si", "Te"},
	"ISFP": {[]string{"Gentle", "Artistic", "Present"}, "Fi", "Se"},
	"ISTP": {[]string{"Resourceful", "Analytical", "Hands-on"}, "Ti", "Se"},
	"ENFJ": {[]string{"Charismatic", "Supportive", "Persuasive"}, "Fe", "Ni"},
	"ENTJ": {[]string{"Commanding", "Efficient", "Ambitious"}, "Te", "Ni"},
	"ENFP": {[]string{"Enthusiastic", "Imaginative", "Warm"}, "Ne", "Fi"},
	"ENTP": {[]string{"Innovative", "Debater", "Visionary"}, "Ne", "Ti"},
	"ESFJ": {[]string{"Caring", "Sociable", "Organized"}, "Fe", "Si"},
	"ESTJ": {[]string{"Orderly", "Direct", "Reliable"}, "Te", "Si"},
	"ESFP": {[]string{"Spontaneous", "Playful", "Generous"}, "Se", "Fi"},
	"ESTP": {[]string{"Bold", "Energetic", "Pragmatic"}, "Se", "Ti"},
}

// CognitionOf looks up the profile for an MBTI type, case-insensitively.
// Anything other than four letters falls back to DefaultMBTI; a four-letter
// code outside the sixteen types is echoed with unknown functions.
func CognitionOf(mbti string) Cognition {
	code := strings.ToUpper(strings.TrimSpace(mbti))
	assumed := false
	if len(code) != 4 {
		code, assumed = DefaultMBTI, true
	}
	e, ok := mbtiTypes[code]
	if !ok {
		return Cognition{
			Type:              code,
			CoreKeywords:      []string{"Analytical", "Thoughtful", "Unique"},
			DominantFunction:  "Unknown",
			AuxiliaryFunction: "Unknown",
		}
	}
	return Cognition{
		Type:              code,
		CoreKeywords:      append([]string(nil), e.keywords...),
		DominantFunction:  cognitiveFunctions[e.dominant],
		AuxiliaryFunction: cognitiveFunctions[e.auxiliary],
		Assumed:           assumed,
	}
}
