package model

// DiagnosticCode identifies a non-fatal evaluation finding
type DiagnosticCode string

const (
	DiagInvalidAnswer     DiagnosticCode = "invalid-answer"
	DiagDegenerateWeights DiagnosticCode = "degenerate-weights"
	DiagEmptyCategory     DiagnosticCode = "empty-category"
)

// Diagnostic is a warning produced during evaluation. Warnings never
// abort the run; they ride along with the result.
type Diagnostic struct {
	Code       DiagnosticCode `json:"code" bson:"code"`
	QuestionID string         `json:"questionId,omitempty" bson:"questionId,omitempty"`
	CategoryID string         `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Message    string         `json:"message" bson:"message"`
}

// CategoryResult is the aggregated outcome for one weighted category
type CategoryResult struct {
	CategoryID           string  `json:"categoryId" bson:"categoryId"`
	Name                 string  `json:"name" bson:"name"`
	Weight               float64 `json:"weight" bson:"weight"`
	AvgUtility           float64 `json:"avgUtility" bson:"avgUtility"`
	AvgCost              float64 `json:"avgCost" bson:"avgCost"`
	NetScore             float64 `json:"netScore" bson:"netScore"`
	WeightedContribution float64 `json:"weightedContribution" bson:"weightedContribution"`
	Answered             int     `json:"answered" bson:"answered"`
	Skipped              int     `json:"skipped" bson:"skipped"` // NA or missing
}

// AdjustmentBreakdown itemizes the cross-category corrections applied
// to the first-period utility and cost.
type AdjustmentBreakdown struct {
	SynergyBonus        float64 `json:"synergyBonus" bson:"synergyBonus"`
	ConflictMitigation  float64 `json:"conflictMitigation" bson:"conflictMitigation"`
	DirectCost          float64 `json:"directCost" bson:"directCost"`
	InitialMotivation   float64 `json:"initialMotivation" bson:"initialMotivation"`
	AttractionAsymmetry float64 `json:"attractionAsymmetry" bson:"attractionAsymmetry"`
	AgeGapCost          float64 `json:"ageGapCost" bson:"ageGapCost"`
	OutlookPenalty      float64 `json:"outlookPenalty" bson:"outlookPenalty"`
	OpportunityCost     float64 `json:"opportunityCost" bson:"opportunityCost"`
}

// PeriodValue is one year of the projection
type PeriodValue struct {
	Year          int     `json:"year" bson:"year"` // 1-based
	Utility       float64 `json:"utility" bson:"utility"`
	Cost          float64 `json:"cost" bson:"cost"`
	Net           float64 `json:"net" bson:"net"`
	DiscountRate  float64 `json:"discountRate" bson:"discountRate"`
	PresentValue  float64 `json:"presentValue" bson:"presentValue"`
	CumulativeNPV float64 `json:"cumulativeNpv" bson:"cumulativeNpv"`
}

// VerdictCode is the machine-readable decision
type VerdictCode string

const (
	VerdictContinue   VerdictCode = "continue"
	VerdictReconsider VerdictCode = "reconsider"
	VerdictLeave      VerdictCode = "strongly-consider-leaving"
)

// Verdict is the decision the whole pipeline funnels into
type Verdict struct {
	Code        VerdictCode `json:"code" bson:"code"`
	Text        string      `json:"text" bson:"text"`
	MarginSmall bool        `json:"marginSmall" bson:"marginSmall"`

	// SwitchingCostDriven marks a continue verdict that only holds
	// because of the accumulated switching cost: without it the
	// alternative would come out ahead.
	SwitchingCostDriven bool `json:"switchingCostDriven" bson:"switchingCostDriven"`
}

// EvaluationResult carries everything a caller needs to show or store:
// the verdict, the figures behind it, and the audit trail.
type EvaluationResult struct {
	SchemaVersion string `json:"schemaVersion" bson:"schemaVersion"`

	GrossUtility float64 `json:"grossUtility" bson:"grossUtility"` // First-period utility after adjustments
	GrossCost    float64 `json:"grossCost" bson:"grossCost"`       // First-period cost after adjustments

	HorizonYears int     `json:"horizonYears" bson:"horizonYears"`
	DiscountRate float64 `json:"discountRate" bson:"discountRate"` // Base rate; periods may vary when dynamics are on

	NPVBeforeSwitchingCost float64 `json:"npvBeforeSwitchingCost" bson:"npvBeforeSwitchingCost"`
	SwitchingCost          float64 `json:"switchingCost" bson:"switchingCost"`
	NPV                    float64 `json:"npv" bson:"npv"`
	NPVAlternative         float64 `json:"npvAlternative" bson:"npvAlternative"`
	SunkCostBias           float64 `json:"sunkCostBias" bson:"sunkCostBias"`

	Categories  []CategoryResult    `json:"categories" bson:"categories"`
	Adjustments AdjustmentBreakdown `json:"adjustments" bson:"adjustments"`
	Periods     []PeriodValue       `json:"periods" bson:"periods"`

	Verdict        Verdict      `json:"verdict" bson:"verdict"`
	Interpretation []string     `json:"interpretation" bson:"interpretation"`
	Diagnostics    []Diagnostic `json:"diagnostics,omitempty" bson:"diagnostics,omitempty"`
	Log            []string     `json:"log,omitempty" bson:"log,omitempty"`
}
