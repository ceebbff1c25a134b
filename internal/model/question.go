package model

// QuestionType defines how a question is answered and scored
type QuestionType string

const (
	QuestionTypeScale  QuestionType = "SCALE"  // Numeric rating on a bounded scale
	QuestionTypeChoice QuestionType = "CHOICE" // Pick one option, ordered best to worst
)

// Question is a single questionnaire item
type Question struct {
	ID        string       `json:"id" yaml:"id"`
	Text      string       `json:"text" yaml:"text"`
	Type      QuestionType `json:"type" yaml:"type"`
	ScaleLow  float64      `json:"scaleLow,omitempty" yaml:"scaleLow,omitempty"`   // SCALE only
	ScaleHigh float64      `json:"scaleHigh,omitempty" yaml:"scaleHigh,omitempty"` // SCALE only
	Options   []string     `json:"options,omitempty" yaml:"options,omitempty"`     // CHOICE only, ordered best to worst
	IsCost    bool         `json:"isCost,omitempty" yaml:"isCost,omitempty"`       // Score counts against the relationship
	AllowNA   bool         `json:"allowNA,omitempty" yaml:"allowNA,omitempty"`
	Weight    float64      `json:"weight,omitempty" yaml:"weight,omitempty"` // Intra-category weight, treated as 1 when zero

	AmplifyExtremes          bool `json:"amplifyExtremes,omitempty" yaml:"amplifyExtremes,omitempty"`
	IsDirectCost             bool `json:"isDirectCost,omitempty" yaml:"isDirectCost,omitempty"` // Raw fraction feeds period cost, skips aggregation
	IsSwitchingCostComponent bool `json:"isSwitchingCostComponent,omitempty" yaml:"isSwitchingCostComponent,omitempty"`
}

// CategoryRole marks categories the adjustment layer needs to locate
type CategoryRole string

const (
	RoleNone               CategoryRole = ""
	RoleCommunication      CategoryRole = "communication"
	RoleConflictResolution CategoryRole = "conflictResolution"
	RoleCulturalBackground CategoryRole = "culturalBackground"
	RoleIntimacy           CategoryRole = "intimacy"
)

// Category groups questions that aggregate into one weighted score
type Category struct {
	ID               string       `json:"id" yaml:"id"`
	Name             string       `json:"name" yaml:"name"`
	Role             CategoryRole `json:"role,omitempty" yaml:"role,omitempty"`
	WeightQuestionID string       `json:"weightQuestionId" yaml:"weightQuestionId"`
	Questions        []Question   `json:"questions" yaml:"questions"`
}

// Section holds administrative questions that never aggregate:
// profile, outlook, alternatives, weights.
type Section struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Roles binds administrative question IDs to the computations that
// consume them. An empty field leaves the corresponding feature off.
type Roles struct {
	BATNA              string `json:"batna" yaml:"batna"`
	BATNAConfidence    string `json:"batnaConfidence" yaml:"batnaConfidence"`
	Duration           string `json:"duration" yaml:"duration"`
	DiscountProxy      string `json:"discountProxy" yaml:"discountProxy"`
	Optimism           string `json:"optimism" yaml:"optimism"`
	BenefitGrowth      string `json:"benefitGrowth" yaml:"benefitGrowth"`
	CostReduction      string `json:"costReduction" yaml:"costReduction"`
	SelfAge            string `json:"selfAge,omitempty" yaml:"selfAge,omitempty"`
	PartnerAge         string `json:"partnerAge,omitempty" yaml:"partnerAge,omitempty"`
	SunkInfluence      string `json:"sunkInfluence" yaml:"sunkInfluence"`
	SunkWorry          string `json:"sunkWorry" yaml:"sunkWorry"`
	SingleSatisfaction string `json:"singleSatisfaction" yaml:"singleSatisfaction"`
	AltLikelihood      string `json:"altLikelihood" yaml:"altLikelihood"`
	RecoveryTime       string `json:"recoveryTime,omitempty" yaml:"recoveryTime,omitempty"`
	PartnerAttraction  string `json:"partnerAttraction,omitempty" yaml:"partnerAttraction,omitempty"`
	SelfAttraction     string `json:"selfAttraction,omitempty" yaml:"selfAttraction,omitempty"`
	AttractionGap      string `json:"attractionGap,omitempty" yaml:"attractionGap,omitempty"`
	InitialAttraction  string `json:"initialAttraction,omitempty" yaml:"initialAttraction,omitempty"`
	NoAlternativeStart string `json:"noAlternativeStart,omitempty" yaml:"noAlternativeStart,omitempty"`

	SwitchingCostImportance string `json:"switchingCostImportance" yaml:"switchingCostImportance"`

	// Per-period discount dynamics, optional as a group
	BreakupRisk      string `json:"breakupRisk,omitempty" yaml:"breakupRisk,omitempty"`
	FutureCertainty  string `json:"futureCertainty,omitempty" yaml:"futureCertainty,omitempty"`
	ConflictPattern  string `json:"conflictPattern,omitempty" yaml:"conflictPattern,omitempty"`
	LearningCapacity string `json:"learningCapacity,omitempty" yaml:"learningCapacity,omitempty"`
}

// Schema is a complete questionnaire definition
type Schema struct {
	Version    string     `json:"version" yaml:"version"`
	Categories []Category `json:"categories" yaml:"categories"`
	Sections   []Section  `json:"sections" yaml:"sections"`
	Roles      Roles      `json:"roles" yaml:"roles"`
}

// QuestionByID finds a question across categories and sections.
func (s *Schema) QuestionByID(id string) (Question, bool) {
	for i := range s.Categories {
		for _, q := range s.Categories[i].Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	for i := range s.Sections {
		for _, q := range s.Sections[i].Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// CategoryByRole returns the first category carrying the given role.
func (s *Schema) CategoryByRole(role CategoryRole) (Category, bool) {
	for _, c := range s.Categories {
		if c.Role == role {
			return c, true
		}
	}
	return Category{}, false
}
