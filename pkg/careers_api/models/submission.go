package models

import (
	"encoding/json"
	"strings"
)

// NormalizeSkills flattens every client shape for the skills field (single
// string, comma-separated string, repeated form field) into an ordered list of
// trimmed, non-empty strings.
func NormalizeSkills(values ...string) []string {
	out := []string{}
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// ParseCheckbox maps checkbox-style consent values to a boolean: true, "true"
// and "on" are affirmative, everything else is not.
func ParseCheckbox(v string) bool {
	return v == "true" || v == "on"
}

// StringList accepts a JSON string or array of strings and normalizes it the
// same way the multipart path does.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = NormalizeSkills(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = NormalizeSkills(many...)
	return nil
}

// Checkbox accepts a JSON boolean or a checkbox string ("true", "on").
type Checkbox bool

func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Checkbox(ParseCheckbox(s))
	return nil
}

// Upload is a fully buffered file taken from a multipart request.
type Upload struct {
	Data     []byte
	Filename string
	Mimetype string
}

// Submission is the normalized applicant payload handed to the service. The
// handler fills it from either a JSON body or a multipart form.
type Submission struct {
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Location        string     `json:"location"`
	AlxStatus       string     `json:"alxStatus"`
	Position        string     `json:"position"`
	Education       string     `json:"education"`
	CurrentRole     string     `json:"currentRole"`
	Experience      string     `json:"experience"`
	TechnicalSkills string     `json:"technicalSkills"`
	DomainKnowledge string     `json:"domainKnowledge"`
	PortfolioLink   string     `json:"portfolioLink"`
	Motivation      string     `json:"motivation"`
	Skills          StringList `json:"skills"`
	Consent         Checkbox   `json:"consent"`

	CV          *Upload `json:"-"`
	CoverLetter *Upload `json:"-"`
}
