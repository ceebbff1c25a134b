package engine

// AlternativeMode selects how the alternative option's NPV is derived
type AlternativeMode string

const (
	// AlternativeDelta shifts the relationship NPV by a signed delta
	// scaled by effective BATNA quality.
	AlternativeDelta AlternativeMode = "delta"
	// AlternativeSimple projects a flat single-life / new-partner
	// utility stream over the same horizon.
	AlternativeSimple AlternativeMode = "simple"
)

// Config holds every tunable constant of the evaluation pipeline.
// Zero values are not usable; start from DefaultConfig.
type Config struct {
	ScalingFactor   float64 // Normalized units to model points
	AmplifyExponent float64

	TimeHorizonDefault  int
	UtilityGrowthMin    float64
	UtilityGrowthMax    float64
	CostChangeMin       float64
	CostChangeMax       float64
	OptimismUtilityCoef float64 // Per normalized optimism point
	BenefitGrowthCoef   float64
	OptimismCostCoef    float64
	CostReductionCoef   float64

	DiscountRateMin   float64 // Reached at maximum patience
	DiscountRateMax   float64
	DiscountRateFloor float64
	DiscountRateCeil  float64
	DiscountFirstYear bool // Exponent t+1 when true, t when false

	// Per-period rate dynamics, active only when the schema binds the
	// dynamics roles.
	RiskCoef         float64
	UncertaintyCoef  float64
	LearningCoef     float64
	DynamicRateFloor float64

	SwitchingCostMaxBase     float64 // Absolute cap, model points
	SwitchingCostZeroNPVBase float64 // Relative cap stand-in when NPV is exactly 0
	SwitchingCostRelativeCap float64 // Fraction of |npvBeforeSwitchingCost|
	ImportanceSpread         float64 // Importance multiplier is 1 ± this

	SynergyThreshold float64
	SynergyBonus     float64
	MitigationCoef   float64
	DirectCostCap    float64

	AttractionGapThreshold     float64
	AttractionPartnerThreshold float64
	AttractionSelfThreshold    float64
	AttractionCostCoef         float64

	MotivationThreshold   float64 // Initial-motivation gate, both directions
	MotivationPenaltyCoef float64

	OpportunityConfThreshold float64 // Alternative confidence above this
	OpportunityNetThreshold  float64 // Intimacy category net below this
	OpportunityCostCoef      float64

	AgeGapThresholdYears float64
	AgeGapRatePerYear    float64
	AgeGapRateCap        float64
	AgeGapMinBase        float64

	OutlookPenaltyThreshold float64
	OutlookPenaltyCoef      float64

	AlternativeMode        AlternativeMode
	BATNADeadZone          float64
	BATNADeltaFraction     float64
	BATNADeltaMinimum      float64
	AltLikelihoodCoef      float64 // Simple mode only
	RecoveryPenaltyPerYear float64 // Simple mode only

	SunkBiasMax         float64
	SmallMarginFraction float64
	LeaveTierFraction   float64
	LeaveTierAbsolute   float64
}

// DefaultConfig returns the documented constants the questionnaire was
// calibrated against.
func DefaultConfig() Config {
	return Config{
		ScalingFactor:   5.0,
		AmplifyExponent: 1.2,

		TimeHorizonDefault:  5,
		UtilityGrowthMin:    0.95,
		UtilityGrowthMax:    1.05,
		CostChangeMin:       0.95,
		CostChangeMax:       1.05,
		OptimismUtilityCoef: 0.02,
		BenefitGrowthCoef:   0.02,
		OptimismCostCoef:    0.01,
		CostReductionCoef:   0.02,

		DiscountRateMin:   0.03,
		DiscountRateMax:   0.15,
		DiscountRateFloor: 0.01,
		DiscountRateCeil:  0.20,
		DiscountFirstYear: true,

		RiskCoef:         0.06,
		UncertaintyCoef:  0.04,
		LearningCoef:     0.03,
		DynamicRateFloor: 0.001,

		SwitchingCostMaxBase:     15.0,
		SwitchingCostZeroNPVBase: 5.0,
		SwitchingCostRelativeCap: 0.75,
		ImportanceSpread:         0.5,

		SynergyThreshold: 0.2,
		SynergyBonus:     0.25,
		MitigationCoef:   0.3,
		DirectCostCap:    0.5,

		AttractionGapThreshold:     0.5,
		AttractionPartnerThreshold: -0.2,
		AttractionSelfThreshold:    0.5,
		AttractionCostCoef:         0.6,

		MotivationThreshold:   0.2,
		MotivationPenaltyCoef: 0.15,

		OpportunityConfThreshold: 0.5,
		OpportunityNetThreshold:  -0.3,
		OpportunityCostCoef:      0.3,

		AgeGapThresholdYears: 5.0,
		AgeGapRatePerYear:    0.005,
		AgeGapRateCap:        0.1,
		AgeGapMinBase:        0.5,

		OutlookPenaltyThreshold: 0.1,
		OutlookPenaltyCoef:      0.1,

		AlternativeMode:        AlternativeDelta,
		BATNADeadZone:          0.1,
		BATNADeltaFraction:     0.4,
		BATNADeltaMinimum:      5.0,
		AltLikelihoodCoef:      0.7,
		RecoveryPenaltyPerYear: 1.0,

		SunkBiasMax:         3.0,
		SmallMarginFraction: 0.15,
		LeaveTierFraction:   0.5,
		LeaveTierAbsolute:   5.0,
	}
}
