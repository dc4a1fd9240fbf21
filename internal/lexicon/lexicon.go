// Package lexicon holds the fixed word lists the extraction heuristics key on:
// the city gazetteer, the skill dictionary, company and role vocabulary, and
// the narrative words used to filter summary prose out of candidate matches.
// All lists ship with built-in defaults and can be replaced wholesale from the
// configuration file.
package lexicon

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Lists groups every word list consumed by the extractors. A list configured
// as non-empty replaces the built-in default; empty lists keep the default.
type Lists struct {
	// Artifacts are boilerplate substrings stripped during normalization.
	Artifacts []string `mapstructure:"artifacts"`
	// Cities is the gazetteer used by the priority location scan.
	Cities []string `mapstructure:"cities"`
	// CommonLocations is the shortlist searched by the last location tier.
	CommonLocations []string `mapstructure:"common_locations"`
	// SkillDictionary is the dictionary for resume-only skill extraction.
	SkillDictionary []string `mapstructure:"skill_dictionary"`
	// NotableEmployers marks big-name companies for strengths generation.
	NotableEmployers []string `mapstructure:"notable_employers"`
	// CompanySuffixes classify a line as a company name.
	CompanySuffixes []string `mapstructure:"company_suffixes"`
	// RoleKeywords classify a line as a job title.
	RoleKeywords []string `mapstructure:"role_keywords"`
	// TechKeywords flag tech/SaaS employers and roles during scoring.
	TechKeywords []string `mapstructure:"tech_keywords"`
	// NarrativeWords mark summary prose; candidates containing them are rejected.
	NarrativeWords []string `mapstructure:"narrative_words"`
	// NameExcludeWords disqualify a token window from being a person name.
	NameExcludeWords []string `mapstructure:"name_exclude_words"`
}

// Default returns the built-in lists.
func Default() Lists {
	return Lists{
		Artifacts: []string{"Document Reader", "Microsoft Word", "Naukri Resume"},
		Cities: []string{
			"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad", "Pune", "Kolkata",
			"Ahmedabad", "Surat", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore",
			"Thane", "Bhopal", "Visakhapatnam", "Pimpri", "Patna", "Vadodara",
			"Ghaziabad", "Ludhiana", "Agra", "Nashik", "Faridabad", "Meerut",
			"Rajkot", "Kalyan", "Vasai", "Varanasi", "Srinagar", "Aurangabad",
			"Dhanbad", "Amritsar", "Navi Mumbai", "Allahabad", "Ranchi", "Howrah",
			"Coimbatore", "Jabalpur", "Gwalior", "Vijayawada", "Jodhpur", "Madurai",
			"Raipur", "Kota", "Guwahati", "Chandigarh", "Solapur", "Hubballi",
			"Tiruchirappalli", "Bareilly", "Mysore", "Tiruppur", "Gurgaon",
			"Aligarh", "Jalandhar", "Bhubaneswar", "Salem", "Warangal", "Guntur",
			"Bhiwandi", "Saharanpur", "Gorakhpur", "Bikaner", "Amravati", "Noida",
			"Jamshedpur", "Bhilai", "Cuttack", "Firozabad", "Kochi", "Nellore",
			"Bhavnagar", "Dehradun", "Durgapur", "Asansol", "Rourkela", "Nanded",
			"Kolhapur", "Ajmer", "Akola", "Gulbarga", "Jamnagar", "Ujjain", "Loni",
			"Siliguri", "Jhansi", "Ulhasnagar", "Jammu", "Sangli", "Mangalore",
			"Erode", "Belgaum", "Ambattur", "Tirunelveli", "Malegaon", "Gaya",
			"Jalgaon", "Udaipur", "Maheshtala",
		},
		CommonLocations: []string{
			"New York", "San Francisco", "Los Angeles", "Chicago", "Seattle",
			"Boston", "Austin", "Denver", "Mumbai", "Delhi", "Bangalore",
			"Chennai", "Hyderabad", "Pune", "Kolkata",
		},
		SkillDictionary: []string{
			"Customer Success", "Account Management", "Client Relations", "CRM",
			"Salesforce", "HubSpot", "Zendesk", "Gainsight", "ChurnZero",
			"Customer Retention", "Upselling", "Cross-selling", "SaaS", "B2B",
			"Enterprise", "Onboarding", "Training", "Data Analysis", "Excel",
			"SQL", "Tableau", "PowerBI", "Project Management", "Agile", "Scrum",
			"Communication", "Leadership", "Team Management",
		},
		NotableEmployers: []string{
			"Salesforce", "HubSpot", "Zendesk", "Microsoft", "Google", "Amazon",
		},
		CompanySuffixes: []string{
			"inc", "corp", "company", "ltd", "llc", "systems", "solutions",
			"technologies", "services", "group", "consulting",
		},
		RoleKeywords: []string{
			"manager", "director", "analyst", "specialist", "coordinator",
			"associate", "executive", "lead", "senior", "junior", "engineer",
			"developer",
		},
		TechKeywords: []string{"SaaS", "B2B", "Software", "Tech", "CRM", "Enterprise"},
		NarrativeWords: []string{
			"years", "experience", "expertise", "specializing", "proven",
			"track record", "background", "knowledge",
		},
		NameExcludeWords: []string{
			"document", "reader", "resume", "cv", "microsoft", "word", "page",
			"profile", "summary", "professional", "experienced", "skilled",
			"motivated", "dedicated", "seeking", "looking", "aspiring",
			"passionate", "naukri", "email", "phone",
		},
	}
}

// FromMap decodes list overrides from configuration data and merges them over
// the defaults. Unknown keys are an error so config typos surface early.
func FromMap(data map[string]any) (Lists, error) {
	overrides := Lists{}

	cfg := &mapstructure.DecoderConfig{
		Result:      &overrides,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return Lists{}, fmt.Errorf("building lists decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return Lists{}, fmt.Errorf("decoding lists: %w", err)
	}

	return Default().merge(overrides), nil
}

func (l Lists) merge(o Lists) Lists {
	if len(o.Artifacts) > 0 {
		l.Artifacts = o.Artifacts
	}
	if len(o.Cities) > 0 {
		l.Cities = o.Cities
	}
	if len(o.CommonLocations) > 0 {
		l.CommonLocations = o.CommonLocations
	}
	if len(o.SkillDictionary) > 0 {
		l.SkillDictionary = o.SkillDictionary
	}
	if len(o.NotableEmployers) > 0 {
		l.NotableEmployers = o.NotableEmployers
	}
	if len(o.CompanySuffixes) > 0 {
		l.CompanySuffixes = o.CompanySuffixes
	}
	if len(o.RoleKeywords) > 0 {
		l.RoleKeywords = o.RoleKeywords
	}
	if len(o.TechKeywords) > 0 {
		l.TechKeywords = o.TechKeywords
	}
	if len(o.NarrativeWords) > 0 {
		l.NarrativeWords = o.NarrativeWords
	}
	if len(o.NameExcludeWords) > 0 {
		l.NameExcludeWords = o.NameExcludeWords
	}
	return l
}
