package extraction

import (
	"context"
	"fmt"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	StrategyComprehensive        = "comprehensive"
	StrategyFocusedRehabilitation = "focused-rehabilitation"
	StrategyHolisticWellness     = "holistic-wellness"
)

var strategyGuidance = map[string]string{
	StrategyComprehensive:        "cover every extracted diagnosis and medication with at least one goal or intervention, prioritizing clinical completeness over brevity.",
	StrategyFocusedRehabilitation: "concentrate on functional status recovery; pick the two or three highest-impact deficits and build measurable rehabilitation goals around them.",
	StrategyHolisticWellness:     "balance clinical needs with the client's stated preferences; include lifestyle, social and wellbeing interventions alongside medical ones.",
}

type chatPlanComposer struct {
	ai       *OpenAIClient
	strategy string
}

// NewPlanComposers returns one composer per generation strategy, in the order
// options are produced. Each composer is deterministic for identical facts:
// the prompt depends only on the strategy name and the input.
func NewPlanComposers(ai *OpenAIClient) []contracts.PlanComposer {
	return []contracts.PlanComposer{
		&chatPlanComposer{ai: ai, strategy: StrategyComprehensive},
		&chatPlanComposer{ai: ai, strategy: StrategyFocusedRehabilitation},
		&chatPlanComposer{ai: ai, strategy: StrategyHolisticWellness},
	}
}

func (c *chatPlanComposer) Strategy() string {
	return c.strategy
}

func (c *chatPlanComposer) Compose(ctx context.Context, facts *models.MedicalExtractionResult, additionalContext string) (*models.CarePlanOption, []float64, error) {
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode client facts: %w", err)
	}

	raw, err := c.ai.CompleteJSON(ctx,
		composerSystemPrompt(c.strategy, strategyGuidance[c.strategy]),
		composerUserPrompt(string(factsJSON), additionalContext),
	)
	if err != nil {
		return nil, nil, err
	}

	var parsed struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Goals       []struct {
			Description string   `json:"description"`
			Measures    []string `json:"measures"`
		} `json:"goals"`
		Interventions []struct {
			Description      string `json:"description"`
			Frequency        string `json:"frequency"`
			Duration         string `json:"duration"`
			ResponsibleParty string `json:"responsibleParty"`
		} `json:"interventions"`
		ExpectedOutcomes []string `json:"expectedOutcomes"`
		Confidence       float64  `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, nil, fmt.Errorf("malformed care plan response: %w", err)
	}
	if parsed.Title == "" || len(parsed.Goals) == 0 || len(parsed.Interventions) == 0 {
		return nil, nil, fmt.Errorf("care plan response is missing required sections")
	}

	option := &models.CarePlanOption{
		Strategy:         c.strategy,
		Title:            parsed.Title,
		Description:      parsed.Description,
		ExpectedOutcomes: parsed.ExpectedOutcomes,
	}
	for _, goal := range parsed.Goals {
		option.Goals = append(option.Goals, models.CarePlanGoal{
			ID:          uuid.NewString(),
			Description: goal.Description,
			Measures:    goal.Measures,
			Status:      models.GoalStatusPending,
		})
	}
	for _, intervention := range parsed.Interventions {
		option.Interventions = append(option.Interventions, models.CarePlanIntervention{
			ID:               uuid.NewString(),
			Description:      intervention.Description,
			Frequency:        intervention.Frequency,
			Duration:         intervention.Duration,
			ResponsibleParty: intervention.ResponsibleParty,
			Status:           models.InterventionStatusPending,
		})
	}

	return option, []float64{parsed.Confidence}, nil
}
