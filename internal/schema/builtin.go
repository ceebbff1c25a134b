package schema

import "revim/internal/model"

func likert(id, text string) model.Question {
	return model.Question{ID: id, Text: text, Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7}
}

func likertCost(id, text string) model.Question {
	q := likert(id, text)
	q.IsCost = true
	return q
}

func importance(id, text string) model.Question {
	return model.Question{ID: id, Text: text, Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 5}
}

func radioNA(id, text string, options ...string) model.Question {
	return model.Question{ID: id, Text: text, Type: model.QuestionTypeChoice, Options: options, AllowNA: true}
}

// Builtin returns the full questionnaire the engine ships with:
// thirteen weighted discipline categories plus the administrative
// profile, outlook, alternatives and weight sections.
func Builtin() *model.Schema {
	return &model.Schema{
		Version: "2.1-en",
		Categories: []model.Category{
			{
				ID: "B", Name: "Psychological Factors", WeightQuestionID: "W_B",
				Questions: []model.Question{
					likert("B1.1", "This relationship generally makes me feel happy and satisfied."),
					likertCost("B1.2", "I often feel stressed, anxious, or sad directly because of this relationship."),
					likert("B1.3", "This relationship meets my core emotional needs (e.g., love, belonging, emotional support)."),
					likert("B1.4", "I feel that my partner genuinely cares about my emotional well-being."),
					likert("B1.5", "This relationship contributes positively to my overall mental health."),
					likert("B2.1", "My partner's and my personalities are generally compatible."),
					likert("B2.2", "We have a similar sense of humor."),
					likertCost("B2.3", "Fundamental personality differences between us cause significant friction."),
					likert("B3.1", "I feel secure and confident in my partner's love and commitment."),
					likertCost("B3.2", "I worry that my partner might leave me or lose interest."),
					likert("B3.3", "I feel that my partner is consistently there for me and responsive to my needs."),
					likert("B4.1", "This relationship supports my personal growth and development."),
					likert("B4.2", "I feel like I have become a better person because of this relationship."),
					likertCost("B4.3", "I sometimes feel I have to suppress parts of myself to maintain this relationship."),
					{
						ID: "B5.1", Text: "I mainly stay in this relationship out of pity or a sense of obligation toward my partner.",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, IsCost: true, IsDirectCost: true,
					},
				},
			},
			{
				ID: "C", Name: "Economic Factors", WeightQuestionID: "W_C",
				Questions: []model.Question{
					likert("C1.1", "My partner and I have similar views on money management (spending, saving, investing)."),
					likert("C1.2", "We are able to discuss financial matters openly and effectively."),
					likertCost("C1.3", "Financial disagreements are a major source of conflict in our relationship."),
					likert("C1.4", "I feel secure about our shared financial future."),
					likert("C2.1", "I feel the division of financial responsibilities in our relationship is fair."),
					likert("C2.2", "I feel the division of household labor and other non-financial contributions in our relationship is fair."),
					likert("C2.3", "I feel my partner contributes his/her fair share to the relationship (financially, emotionally, practically)."),
					{
						ID: "C3.1", Text: "I have invested significant time and emotional energy into this relationship that would be difficult to abandon.",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, IsSwitchingCostComponent: true,
					},
					{
						ID: "C3.2", Text: "Our lives are deeply intertwined (e.g., shared property, children, joint ventures), making separation costly and complex.",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, IsSwitchingCostComponent: true,
					},
					likert("C3.3", "I believe this relationship enhances my overall economic prospects or stability."),
					likertCost("C3.4", "I sometimes feel this relationship hinders me from pursuing personal or professional opportunities."),
				},
			},
			{
				ID: "D", Name: "Sociological Factors", WeightQuestionID: "W_D",
				Questions: []model.Question{
					likert("D1.1", "My friends and family generally approve of and get along well with my partner."),
					likert("D1.2", "I feel comfortable and accepted within my partner's social circle (friends and family)."),
					likert("D1.3", "Our shared social network provides strong support for our relationship."),
					likertCost("D1.4", "Interactions between my social circle and my partner's social circle are often a source of stress or conflict."),
					likert("D2.1", "Our relationship aligns with the socio-cultural expectations of our community/families."),
					likertCost("D2.2", "I feel pressure from society or family regarding the progression or status of our relationship (e.g., marriage, children)."),
					likert("D3.1", "This relationship has expanded my social connections in a positive way."),
					likert("D3.2", "My partner's social connections have been beneficial to me (e.g., professionally, opportunities)."),
				},
			},
			{
				ID: "E", Name: "Anthropological Factors", Role: model.RoleCulturalBackground, WeightQuestionID: "W_E",
				Questions: []model.Question{
					likert("E1.1", "My partner and I share similar core cultural values and beliefs."),
					likert("E1.2", "Differences in our cultural backgrounds (e.g., ethnicity, religion, upbringing) are a source of richness rather than conflict."),
					likert("E1.3", "We are able to effectively navigate any cultural differences that arise."),
					likert("E2.1", "We have meaningful shared rituals or traditions (e.g., ways of celebrating holidays, anniversaries, daily habits) that strengthen our bond."),
					likert("E2.2", "These shared rituals are important to me."),
					likert("E3.1", "The structures and interaction patterns of our respective families are generally compatible."),
					likert("E3.2", "I feel optimistic about the prospect of further integration with my partner's extended family (if applicable)."),
				},
			},
			{
				ID: "F", Name: "Biological/Medical Factors", Role: model.RoleIntimacy, WeightQuestionID: "W_F",
				Questions: []model.Question{
					likert("F1.1", "My partner and I are compatible in our health habits (e.g., diet, exercise, substance use)."),
					likert("F1.2", "My partner supports me in maintaining a healthy lifestyle, and I support him/her."),
					likertCost("F1.3", "I am concerned about my partner's health habits or choices."),
					likert("F1.4", "If one of us faced a serious health issue, I am confident we would effectively support each other."),
					{
						ID: "F2.1", Text: "How satisfied am I with my partner's current physical attractiveness?",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, AmplifyExtremes: true, Weight: 2,
					},
					likert("F2.2", "I am still physically attracted to my partner."),
					likert("F2.3", "We are able to communicate openly and effectively about sexual needs and desires."),
					{
						ID: "F2.4", Text: "I am satisfied with the level and quality of physical intimacy in our relationship.",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7, AmplifyExtremes: true, Weight: 1.5,
					},
					radioNA("F3.1", "Are my partner and I aligned on matters of procreation (timing, number of children, parenting philosophy)?",
						"Very Consistent", "Fairly Consistent", "Neutral/Uncertain", "Some Disagreement", "Serious Disagreement"),
					radioNA("F3.2", "How confident are you in your partner as a potential co-parent?",
						"Very Confident", "Fairly Confident", "Neutral/Uncertain", "Some Concern", "Very Concerned"),
				},
			},
			{
				ID: "G", Name: "Political Science Factors", Role: model.RoleConflictResolution, WeightQuestionID: "W_G",
				Questions: []model.Question{
					likert("G1.1", "I feel that power and decision-making in the relationship are shared fairly."),
					likert("G1.2", "My opinions and preferences are given equal weight in important relationship decisions."),
					likertCost("G1.3", "I sometimes feel controlled or dominated by my partner."),
					likert("G2.1", "We are able to resolve conflicts effectively and constructively."),
					likert("G2.2", "When we disagree, we can usually reach a compromise that satisfies both of us."),
					likertCost("G2.3", "Conflicts often escalate or remain unresolved."),
					likert("G3.1", "We have a shared vision for the future of our relationship."),
					likert("G3.2", "My personal autonomy (personal space, alone time, independent pursuits) is respected in this relationship."),
				},
			},
			{
				ID: "H", Name: "Philosophical Factors", WeightQuestionID: "W_H",
				Questions: []model.Question{
					likert("H1.1", "My partner and I share similar core ethical and moral values."),
					likert("H1.2", "In most important life situations, we agree on what is right and wrong."),
					likertCost("H1.3", "I have serious concerns about my partner's ethical behavior or moral standards."),
					likert("H2.1", "This relationship contributes to my sense of meaning and purpose in life."),
					likert("H2.2", "My partner supports me in pursuing my personal life goals and ambitions."),
					likert("H2.3", "We have some shared long-term life goals or ambitions."),
					likert("H3.1", "I am able to be my authentic self in this relationship."),
				},
			},
			{
				ID: "I", Name: "Legal/Quasi-Legal Factors", WeightQuestionID: "W_I",
				Questions: []model.Question{
					likert("I1.1", "I am fully committed to this relationship."),
					likert("I1.2", "I believe my partner is fully committed to this relationship."),
					likert("I1.3", "I fully trust my partner."),
					likert("I2.1", "The unwritten rules and expectations in our relationship feel fair and balanced."),
					likert("I2.2", "My partner consistently meets my expectations of them in this relationship (and vice versa)."),
					likert("I3.1", "I feel secure about the long-term future of this relationship."),
					radioNA("I3.2", "Have we openly discussed our long-term intentions for this relationship (e.g., marriage, cohabitation)?",
						"Fully Discussed and Aligned", "Discussed but Disagreements Exist", "Discussed but No Clear Conclusion Yet", "Never Seriously Discussed"),
				},
			},
			{
				ID: "J", Name: "Communication Factors", Role: model.RoleCommunication, WeightQuestionID: "W_J",
				Questions: []model.Question{
					likert("J1.1", "We are able to communicate openly and honestly about important matters."),
					likert("J1.2", "When I express myself, I feel heard and understood by my partner."),
					likert("J1.3", "My partner is a good listener."),
					likert("J1.4", "We are good at expressing affection and appreciation for each other."),
					likertCost("J2.1", "Our communication often involves criticism, defensiveness, or blaming."),
					likert("J2.2", "We are able to give and receive constructive feedback without major issues."),
					likert("J2.3", "We are good at understanding each other's non-verbal cues (e.g., body language, tone)."),
				},
			},
			{
				ID: "K", Name: "Historical Factors", WeightQuestionID: "W_K",
				Questions: []model.Question{
					likert("K1.1", "We have a rich history of positive shared experiences."),
					likert("K1.2", "Looking back on our relationship, good memories far outweigh the bad ones."),
					likert("K1.3", "We have successfully navigated difficult challenges together in the past."),
					likert("K2.1", "We have learned and grown from past conflicts or mistakes in the relationship."),
					likertCost("K2.2", "I see us repeating the same negative patterns of interaction over and over."),
					likert("K3.1", "When the relationship began, was strong mutual physical and emotional attraction the main driving force? (1=Not At All, 7=Absolutely)"),
					likert("K3.2", "When the relationship began, to what extent was the lack of better alternatives a reason you entered it? (1=Not At All, 7=To a Great Extent)"),
				},
			},
			{
				ID: "L", Name: "Geographical Factors", WeightQuestionID: "W_L",
				Questions: []model.Question{
					radioNA("L1.1", "(If cohabiting) How do I feel about our shared living space and how it is managed?",
						"Very Comfortable/Satisfied", "Fairly Comfortable/Satisfied", "Neutral", "Somewhat Uncomfortable/Dissatisfied", "Very Uncomfortable/Dissatisfied"),
					likert("L1.2", "Does our current geographical location serve both of our needs well (career, family, lifestyle)?"),
					radioNA("L2.1", "(If long distance or frequent travel) How stressful is the physical distance between us on the relationship?",
						"No Impact At All", "Minor, Manageable Impact", "Some Impact", "Significant Impact, Causes Stress", "Very Significant Impact, Difficult to Maintain"),
					radioNA("L2.2", "How effectively do we manage periods of separation?",
						"Managed Very Well", "Managed Fairly Well", "Average", "Managed Not So Well", "Managed Very Poorly"),
				},
			},
			{
				ID: "M", Name: "Ecological Factors", WeightQuestionID: "W_M",
				Questions: []model.Question{
					likert("M1.1", "Our relationship feels resilient; we can bounce back from setbacks."),
					likert("M1.2", "Our relationship adapts well to changes in our lives or external circumstances."),
					likert("M2.1", "This relationship generally gives me more energy than it drains."),
					likert("M2.2", "I feel the giving and receiving of support in our relationship is healthy and balanced."),
					likert("M3.1", "Our interdependence feels healthy and mutually beneficial, not co-dependent or one-sided."),
				},
			},
			{
				ID: "N", Name: "Information/Systems Factors", WeightQuestionID: "W_N",
				Questions: []model.Question{
					likert("N1.1", "There is a comfortable level of predictability and routine in our relationship."),
					likertCost("N1.2", "Our relationship often feels chaotic or unstable."),
					likert("N2.1", "Our relationship system is open to new information and able to adapt (e.g., trying new approaches if old ones don't work)."),
					likert("N2.2", "We are generally good at recognizing when things aren't working and making changes."),
					likert("N3.1", "Our relationship is generally resilient to negative external influences."),
					likert("N3.2", "We are good at incorporating positive external input when beneficial (e.g., advice from trusted friends, therapy if needed)."),
				},
			},
		},
		Sections: []model.Section{
			{
				ID: "A", Name: "Profile and Alternatives",
				Questions: []model.Question{
					{
						ID: "A1", Text: "How long do you realistically expect this relationship to last from today?",
						Type: model.QuestionTypeChoice,
						Options: []string{"Several months", "1-2 years", "3-5 years", "5-10 years", "More than 10 years", "Lifelong", "Very uncertain"},
					},
					{
						ID: "A5", Text: "If this relationship were to end today, how would you rate your best alternative? (1=Much Worse than current, 5=About the Same, 10=Much Better than current)",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 10,
					},
					{
						ID: "A6", Text: "How confident are you that you could soon find an alternative at least as good as your current partner? (1=No Confidence, 10=Extremely Confident)",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 10,
					},
					{ID: "A7", Text: "Your age:", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100},
					{ID: "A8", Text: "Your partner's age:", Type: model.QuestionTypeScale, ScaleLow: 16, ScaleHigh: 100},
					{
						ID: "A9", Text: "How would you rate your own physical attractiveness? (1=Well Below Average, 7=Well Above Average)",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7,
					},
					{
						ID: "A10", Text: "How large do you perceive the gap between your and your partner's attractiveness to be? (1=None, 7=Very Large)",
						Type: model.QuestionTypeScale, ScaleLow: 1, ScaleHigh: 7,
					},
				},
			},
			{
				ID: "O", Name: "Future Expectations and Discount Rate Proxy",
				Questions: []model.Question{
					likert("O1", "Looking ahead, I am optimistic about this relationship."),
					likert("O2", "I expect the benefits from this relationship to increase or remain high over time."),
					likert("O3", "I expect the costs or difficulties of this relationship to decrease or remain manageable over time."),
					likert("O4", "When making important life decisions, I tend to prioritize long-term benefits over immediate gratification."),
				},
			},
			{
				ID: "P", Name: "Alternatives and Sunk Costs",
				Questions: []model.Question{
					{
						ID: "P1", Text: "If you were single, how satisfied do you expect your life would be compared to now?",
						Type: model.QuestionTypeChoice,
						Options: []string{"Much better than now", "Somewhat better", "About the same", "Somewhat worse", "Much worse than now"},
					},
					likert("P2", "How likely are you to find a comparable or better partner within a reasonable time? (1=Very Unlikely, 7=Very Likely)"),
					{
						ID: "P3", Text: "How long do you think you would need to emotionally recover from ending this relationship?",
						Type: model.QuestionTypeChoice,
						Options: []string{"A few months", "About half a year", "About a year", "More than a year", "Hard to say"},
					},
					likert("P4", "How much do the time and effort already invested influence your decision to stay? (1=Not At All, 7=Very Strongly)"),
					likert("P5", "How much do you worry that leaving would waste everything already invested? (1=Not At All, 7=Very Strongly)"),
				},
			},
			{
				ID: "W", Name: "Importance Weight Allocation",
				Questions: []model.Question{
					importance("W_B", "Importance of Psychological Factors:"),
					importance("W_C", "Importance of Economic Factors:"),
					importance("W_D", "Importance of Sociological Factors:"),
					importance("W_E", "Importance of Anthropological Factors:"),
					importance("W_F", "Importance of Biological/Medical Factors:"),
					importance("W_G", "Importance of Political Science Factors:"),
					importance("W_H", "Importance of Philosophical Factors:"),
					importance("W_I", "Importance of Legal/Quasi-Legal Factors:"),
					importance("W_J", "Importance of Communication Factors:"),
					importance("W_K", "Importance of Historical Factors:"),
					importance("W_L", "Importance of Geographical Factors:"),
					importance("W_M", "Importance of Ecological Factors:"),
					importance("W_N", "Importance of Information/Systems Factors:"),
					importance("W_I0", "Importance of already-invested switching costs to your decision:"),
				},
			},
		},
		Roles: model.Roles{
			BATNA:                   "A5",
			BATNAConfidence:         "A6",
			Duration:                "A1",
			DiscountProxy:           "O4",
			Optimism:                "O1",
			BenefitGrowth:           "O2",
			CostReduction:           "O3",
			SelfAge:                 "A7",
			PartnerAge:              "A8",
			SunkInfluence:           "P4",
			SunkWorry:               "P5",
			SingleSatisfaction:      "P1",
			AltLikelihood:           "P2",
			RecoveryTime:            "P3",
			PartnerAttraction:       "F2.1",
			SelfAttraction:          "A9",
			AttractionGap:           "A10",
			InitialAttraction:       "K3.1",
			NoAlternativeStart:      "K3.2",
			SwitchingCostImportance: "W_I0",
		},
	}
}
