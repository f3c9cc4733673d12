package assessment

import (
	"fmt"
	"sort"
)

var phq9 = Assessment{
	ID:    "phq9",
	Title: "PHQ-9 Depression Screening",
	Questions: []Question{
		{1, "Little interest or pleasure in doing things"},
		{2, "Feeling down, depressed, or hopeless"},
		{3, "Trouble falling or staying asleep, or sleeping too much"},
		{4, "Feeling tired or having little energy"},
		{5, "Poor appetite or overeating"},
		{6, "Feeling bad about yourself or that you are a failure or have let yourself or your family down"},
		{7, "Trouble concentrating on things, such as reading the newspaper or watching television"},
		{8, "Moving or speaking so slowly that other people could have noticed, or being so fidgety or restless that you have been moving around a lot more than usual"},
		{9, "Thoughts that you would be better off dead, or thoughts of hurting yourself in some way"},
	},
	Bands: []Band{
		{4, LevelMinimal, "Minimal depression symptoms"},
		{9, LevelMild, "Mild depression symptoms"},
		{14, LevelModerate, "Moderate depression symptoms"},
		{19, LevelModeratelySevere, "Moderately severe depression symptoms"},
		{27, LevelSevere, "Severe depression symptoms"},
	},
}

var gad7 = Assessment{
	ID:    "gad7",
	Title: "GAD-7 Anxiety Assessment",
	Questions: []Question{
		{1, "Feeling nervous, anxious, or on edge"},
		{2, "Not being able to stop or control worrying"},
		{3, "Worrying too much about different things"},
		{4, "Trouble relaxing"},
		{5, "Being so restless that it's hard to sit still"},
		{6, "Becoming easily annoyed or irritable"},
		{7, "Feeling afraid as if something awful might happen"},
	},
	Bands: []Band{
		{4, LevelMinimal, "Minimal anxiety symptoms"},
		{9, LevelMild, "Mild anxiety symptoms"},
		{14, LevelModerate, "Moderate anxiety symptoms"},
		{21, LevelSevere, "Severe anxiety symptoms"},
	},
}

var catalog = map[string]Assessment{
	phq9.ID: phq9,
	gad7.ID: gad7,
}

// Lookup returns the questionnaire with id.
func Lookup(id string) (Assessment, error) {
	a, ok := catalog[id]
	if !ok {
		return Assessment{}, fmt.Errorf("%q: %w", id, ErrUnknownAssessment)
	}
	return a, nil
}

// IDs lists available questionnaires in stable order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
