package entity

// CheckLevel is the severity of a data-quality check.
type CheckLevel string

const (
	CheckLevelDanger  CheckLevel = "danger"
	CheckLevelWarning CheckLevel = "warning"
	CheckLevelInfo    CheckLevel = "info"
)

// Ordering ranks levels so that the most severe checks are listed first.
func (l CheckLevel) Ordering() int {
	switch l {
	case CheckLevelDanger:
		return 0
	case CheckLevelWarning:
		return 1
	default:
		return 2
	}
}

// CheckKind tells clients whether findings carry nested values.
type CheckKind string

const (
	CheckKindSimple     CheckKind = "simple"
	CheckKindStructured CheckKind = "structured"
)

// Finding is one record flagged by a check.
type Finding struct {
	Label    string   `json:"label"`
	AdminURL string   `json:"admin_url,omitempty"`
	Values   []string `json:"values,omitempty"`
}

// Check is a labelled data-quality check and the records it flagged.
// Findings are data, not errors: a failing check never aborts the others.
type Check struct {
	Label  string     `json:"label"`
	Kind   CheckKind  `json:"type"`
	Level  CheckLevel `json:"level"`
	Pass   bool       `json:"pass"`
	Values []Finding  `json:"values"`
}
