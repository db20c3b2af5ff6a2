package utils

import (
	"testing"
	"time"

	"revolucare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePlan() *models.CarePlan {
	target := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &models.CarePlan{
		Title:       "Mobility Plan",
		Description: "Restore independent ambulation.",
		Status:      models.CarePlanStatusDraft,
		Goals: []models.CarePlanGoal{{
			ID:          "goal-1",
			Description: "Walk 100m unassisted",
			TargetDate:  &target,
			Measures:    []string{"distance walked"},
			Status:      models.GoalStatusPending,
		}},
		Interventions: []models.CarePlanIntervention{{
			ID:               "iv-1",
			Description:      "Physical therapy",
			Frequency:        "3x weekly",
			Duration:         "6 weeks",
			ResponsibleParty: "physical therapist",
			Status:           models.InterventionStatusPending,
		}},
	}
}

func TestComputeCarePlanDiffNoChanges(t *testing.T) {
	current := basePlan()
	updated := *current

	changes := ComputeCarePlanDiff(current, &updated)

	assert.Empty(t, changes)
}

func TestComputeCarePlanDiffIgnoresRegeneratedGoalIDs(t *testing.T) {
	current := basePlan()
	updated := *current
	updated.Goals = append([]models.CarePlanGoal(nil), current.Goals...)
	updated.Goals[0].ID = "goal-regenerated"

	changes := ComputeCarePlanDiff(current, &updated)

	assert.Empty(t, changes, "identical goal content under a new id is not a change")
}

func TestComputeCarePlanDiffRecordsFieldChanges(t *testing.T) {
	current := basePlan()
	updated := *current
	updated.Title = "Mobility Plan v2"
	updated.Status = models.CarePlanStatusInReview
	updated.Goals = append([]models.CarePlanGoal(nil), current.Goals...)
	updated.Goals[0].Description = "Walk 200m unassisted"

	changes := ComputeCarePlanDiff(current, &updated)

	require.Len(t, changes, 3)
	titleChange, ok := changes["title"].(FieldChange)
	require.True(t, ok)
	assert.Equal(t, "Mobility Plan", titleChange.From)
	assert.Equal(t, "Mobility Plan v2", titleChange.To)
	assert.Contains(t, changes, "status")
	assert.Contains(t, changes, "goals")
	assert.NotContains(t, changes, "interventions")
}

func TestComputeCarePlanDiffDetectsGoalTimingAndMeasures(t *testing.T) {
	current := basePlan()

	t.Run("target date change", func(t *testing.T) {
		updated := *current
		updated.Goals = append([]models.CarePlanGoal(nil), current.Goals...)
		later := current.Goals[0].TargetDate.AddDate(0, 1, 0)
		updated.Goals[0].TargetDate = &later
		assert.Contains(t, ComputeCarePlanDiff(current, &updated), "goals")
	})

	t.Run("target date cleared", func(t *testing.T) {
		updated := *current
		updated.Goals = append([]models.CarePlanGoal(nil), current.Goals...)
		updated.Goals[0].TargetDate = nil
		assert.Contains(t, ComputeCarePlanDiff(current, &updated), "goals")
	})

	t.Run("measure added", func(t *testing.T) {
		updated := *current
		updated.Goals = append([]models.CarePlanGoal(nil), current.Goals...)
		updated.Goals[0].Measures = []string{"distance walked", "gait speed"}
		assert.Contains(t, ComputeCarePlanDiff(current, &updated), "goals")
	})

	t.Run("goal added", func(t *testing.T) {
		updated := *current
		updated.Goals = append(append([]models.CarePlanGoal(nil), current.Goals...), models.CarePlanGoal{
			ID:          "goal-2",
			Description: "Climb stairs",
			Measures:    []string{"steps climbed"},
			Status:      models.GoalStatusPending,
		})
		assert.Contains(t, ComputeCarePlanDiff(current, &updated), "goals")
	})
}

func TestComputeCarePlanDiffDetectsInterventionChanges(t *testing.T) {
	current := basePlan()
	updated := *current
	updated.Interventions = append([]models.CarePlanIntervention(nil), current.Interventions...)
	updated.Interventions[0].Frequency = "daily"

	changes := ComputeCarePlanDiff(current, &updated)

	require.Contains(t, changes, "interventions")
	assert.NotContains(t, changes, "goals")
}
