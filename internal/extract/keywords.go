package extract

import (
	"sort"
	"strings"
)

// domainKeywords maps a domain name to the phrases that indicate it.
// Vocabularies cover the verticals the engine is deployed against, with the
// pharmaceutical set being the richest (primary customer domain).
var domainKeywords = map[string][]string{
	"pharmaceutical": {"pharma", "pharmaceutical", "clinical", "drug", "biotech", "fda", "gmp", "regulatory affairs", "pharmacovigilance", "life sciences"},
	"fintech":        {"fintech", "banking", "payments", "trading", "financial services", "lending", "insurance tech"},
	"healthcare":     {"healthcare", "hospital", "medical", "patient", "ehr", "health tech", "telemedicine"},
	"e-commerce":     {"e-commerce", "ecommerce", "retail", "marketplace", "checkout", "storefront"},
	"education":      {"edtech", "education", "learning platform", "e-learning", "curriculum"},
	"gaming":         {"gaming", "game development", "game engine", "esports"},
	"telecom":        {"telecom", "telecommunications", "5g", "networking infrastructure"},
	"logistics":      {"logistics", "supply chain", "warehouse", "freight", "shipping"},
	"government":     {"government", "public sector", "civic", "defense"},
	"media":          {"media", "streaming", "advertising", "publishing", "adtech"},
}

// roleKeywords maps a canonical role to the phrases that indicate it.
var roleKeywords = map[string][]string{
	"software engineer": {"software engineer", "software developer", "developer", "programmer", "swe"},
	"data scientist":    {"data scientist", "machine learning engineer", "ml engineer", "data science"},
	"data engineer":     {"data engineer", "etl developer", "data pipeline"},
	"devops engineer":   {"devops", "site reliability", "sre", "platform engineer", "infrastructure engineer"},
	"product manager":   {"product manager", "product owner", "program manager"},
	"designer":          {"designer", "ux", "ui design", "user experience"},
	"qa engineer":       {"qa engineer", "quality assurance", "test engineer", "sdet"},
	"analyst":           {"business analyst", "data analyst", "analyst"},
	"researcher":        {"researcher", "research scientist", "clinical research associate"},
	"manager":           {"engineering manager", "team lead", "tech lead"},
}

// technologyKeywords are individual technologies matched as substrings.
var technologyKeywords = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "c++", "c#", "ruby", "rust", "php", "sas", "r",
	"react", "angular", "vue", "node.js", "django", "spring", "rails", ".net",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "kafka",
	"machine learning", "deep learning", "tensorflow", "pytorch", "nlp",
}

// responsibilityKeywords are action phrases describing what someone did or will do.
var responsibilityKeywords = []string{
	"led", "managed", "designed", "architected", "built", "developed", "implemented",
	"deployed", "maintained", "tested", "reviewed", "mentored", "collaborated",
	"optimized", "automated", "migrated", "scaled", "monitored", "documented",
}

// ExtractDomains returns every domain whose keywords appear in the text, sorted
// for deterministic output.
func ExtractDomains(text string) []string {
	return matchVocabulary(text, domainKeywords)
}

// ExtractRoles returns every role whose keywords appear in the text, sorted.
func ExtractRoles(text string) []string {
	return matchVocabulary(text, roleKeywords)
}

// ExtractTechnologies returns every known technology mentioned in the text.
// Technology names are matched on token boundaries so that short names like
// "go" or "r" do not fire inside unrelated words.
func ExtractTechnologies(text string) []string {
	lower := strings.ToLower(text)
	tokens := tokenSet(lower)
	matches := make([]string, 0)
	for _, keyword := range technologyKeywords {
		if strings.ContainsAny(keyword, " ") {
			if strings.Contains(lower, keyword) {
				matches = append(matches, keyword)
			}
			continue
		}
		if tokens[keyword] {
			matches = append(matches, keyword)
		}
	}
	return matches
}

// tokenSet splits lowercased text into tokens, keeping the symbol characters
// that appear in technology names (+, #, .).
func tokenSet(lower string) map[string]bool {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '.':
			return false
		default:
			return true
		}
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.Trim(f, ".")] = true
	}
	return set
}

// ExtractResponsibilities returns every responsibility verb found in the text,
// matched on token boundaries.
func ExtractResponsibilities(text string) []string {
	tokens := tokenSet(strings.ToLower(text))
	matches := make([]string, 0)
	for _, keyword := range responsibilityKeywords {
		if tokens[keyword] {
			matches = append(matches, keyword)
		}
	}
	return matches
}

// matchVocabulary returns the sorted keys whose keyword lists hit the text.
func matchVocabulary(text string, vocabulary map[string][]string) []string {
	lower := strings.ToLower(text)
	matches := make([]string, 0)
	for name, keywords := range vocabulary {
		if containsAny(lower, keywords) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
