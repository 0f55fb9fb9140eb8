package crew

import "strings"

// Code is the closed department vocabulary. Incoming department strings are
// normalized into exactly one of these; everything the table does not
// recognize lands in CodeOther. Declaration order is meaningful: it is the
// deterministic tie-break order used by the layout balancer.
type Code string

const (
	CodeProduction     Code = "PRODUCTION"
	CodeCamera         Code = "CAMERA"
	CodeSound          Code = "SOUND"
	CodeGripElectric   Code = "GRIP_ELECTRIC"
	CodeArt            Code = "ART"
	CodeWardrobe       Code = "WARDROBE"
	CodeHairMakeup     Code = "HAIR_MAKEUP"
	CodeLocations      Code = "LOCATIONS"
	CodeTransportation Code = "TRANSPORTATION"
	CodeCatering       Code = "CATERING"
	CodePostProduction Code = "POST_PRODUCTION"
	CodeTalent         Code = "TALENT"
	CodeOther          Code = "OTHER"
)

var CodeValues = []Code{
	CodeProduction,
	CodeCamera,
	CodeSound,
	CodeGripElectric,
	CodeArt,
	CodeWardrobe,
	CodeHairMakeup,
	CodeLocations,
	CodeTransportation,
	CodeCatering,
	CodePostProduction,
	CodeTalent,
	CodeOther,
}

// normalizeTable maps exact (upper-cased, trimmed) department strings to
// codes. It covers the synonyms and the known typos the extraction layer
// produces, so the tolerance is auditable in one place instead of scattered
// string checks.
var normalizeTable = map[string]Code{
	"PRODUCTION":         CodeProduction,
	"PROUCTION":          CodeProduction, // common upstream typo
	"MGMT":               CodeProduction,
	"MANAGEMENT":         CodeProduction,
	"DIRECTING":          CodeProduction,
	"PRODUCTION SUPPORT": CodeProduction,
	"CAMERA":             CodeCamera,
	"CAMERA DEPT":        CodeCamera,
	"DIGITAL":            CodeCamera,
	"STILLS":             CodeCamera,
	"SOUND":              CodeSound,
	"AUDIO":              CodeSound,
	"G&E":                CodeGripElectric,
	"GRIP":               CodeGripElectric,
	"ELECTRIC":           CodeGripElectric,
	"LIGHTING":           CodeGripElectric,
	"GRIP & ELECTRIC":    CodeGripElectric,
	"GRIP_ELECTRIC":      CodeGripElectric,
	"ART":                CodeArt,
	"ART DEPT":           CodeArt,
	"WARDROBE":           CodeWardrobe,
	"HAIR":               CodeHairMakeup,
	"MAKEUP":             CodeHairMakeup,
	"HAIR & MAKEUP":      CodeHairMakeup,
	"HAIR_MAKEUP":        CodeHairMakeup,
	"HMU":                CodeHairMakeup,
	"H/MU":               CodeHairMakeup,
	"VANITY":             CodeHairMakeup,
	"VANITIES":           CodeHairMakeup,
	"LOCATIONS":          CodeLocations,
	"TRANSPORTATION":     CodeTransportation,
	"TRANSPO":            CodeTransportation,
	"CATERING":           CodeCatering,
	"CRAFT":              CodeCatering,
	"CRAFT SERVICES":     CodeCatering,
	"POST":               CodePostProduction,
	"POST PRODUCTION":    CodePostProduction,
	"POST_PRODUCTION":    CodePostProduction,
	"TALENT":             CodeTalent,
	"MEDICAL":            CodeOther,
	"OTHER":              CodeOther,
}

// normalizeTokens is the substring fallback for strings the exact table does
// not cover, e.g. "Camera Department" or a role-shaped value like
// "Prouction Manager". Slice, not map: lookup order must be deterministic.
var normalizeTokens = []struct {
	Token string
	Code  Code
}{
	{"PRODUCTION", CodeProduction},
	{"PROUCTION", CodeProduction},
	{"CAMERA", CodeCamera},
	{"STILLS", CodeCamera},
	{"SOUND", CodeSound},
	{"AUDIO", CodeSound},
	{"GRIP", CodeGripElectric},
	{"ELECTRIC", CodeGripElectric},
	{"GAFFER", CodeGripElectric},
	{"ART", CodeArt},
	{"WARDROBE", CodeWardrobe},
	{"HAIR", CodeHairMakeup},
	{"MAKEUP", CodeHairMakeup},
	{"VANIT", CodeHairMakeup},
	{"LOCATION", CodeLocations},
	{"TRANSPO", CodeTransportation},
	{"CATER", CodeCatering},
	{"CRAFT", CodeCatering},
	{"POST", CodePostProduction},
	{"TALENT", CodeTalent},
}

// Normalize maps a free-form department string to its vocabulary code.
// Unknown or empty input normalizes to CodeOther; this function never fails.
func Normalize(name string) Code {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return CodeOther
	}
	if code, ok := normalizeTable[key]; ok {
		return code
	}
	for _, entry := range normalizeTokens {
		if strings.Contains(key, entry.Token) {
			return entry.Code
		}
	}
	return CodeOther
}

var displayTable = map[Code]string{
	CodeProduction:     "PRODUCTION",
	CodeCamera:         "CAMERA DEPT",
	CodeSound:          "SOUND",
	CodeGripElectric:   "GRIP & ELECTRIC",
	CodeArt:            "ART DEPT",
	CodeWardrobe:       "WARDROBE",
	CodeHairMakeup:     "HAIR & MAKEUP",
	CodeLocations:      "LOCATIONS",
	CodeTransportation: "TRANSPORTATION",
	CodeCatering:       "CATERING",
	CodePostProduction: "POST PRODUCTION",
	CodeTalent:         "TALENT",
	CodeOther:          "OTHER",
}

// Display returns the printed call-sheet section name for a code.
func (c Code) Display() string {
	if name, ok := displayTable[c]; ok {
		return name
	}
	return string(c)
}

// vocabularyRank returns the position of c in the controlled vocabulary.
// Used as the stable tie-break when two departments have equal row counts.
func vocabularyRank(c Code) int {
	for i, v := range CodeValues {
		if v == c {
			return i
		}
	}
	return len(CodeValues)
}

// Member is one crew row. A nil Name marks the slot unassigned, which is
// distinct from an assigned member with missing contact fields.
type Member struct {
	ID       string
	Role     string
	Name     *string
	Phone    *string
	Email    *string
	CallTime *string
	Location *string
}

// Assigned reports whether the row has a person attached to it.
func (m Member) Assigned() bool {
	return m.Name != nil && strings.TrimSpace(*m.Name) != ""
}

// Department owns its crew rows. Crew order is preserved as given.
type Department struct {
	Code Code
	Crew []Member
}

// RowCount is the rendered height of the department: every department shows
// a header row even when it has no crew.
func (d Department) RowCount() int {
	if len(d.Crew) == 0 {
		return 1
	}
	return len(d.Crew)
}

// Group buckets members by normalized department code, preserving member
// order within each department and emitting departments in vocabulary order.
func Group(members []Member, departmentOf func(Member) string) []Department {
	byCode := make(map[Code][]Member)
	for _, m := range members {
		code := Normalize(departmentOf(m))
		byCode[code] = append(byCode[code], m)
	}

	var departments []Department
	for _, code := range CodeValues {
		if crew, ok := byCode[code]; ok {
			departments = append(departments, Department{Code: code, Crew: crew})
		}
	}
	return departments
}
