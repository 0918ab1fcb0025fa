package service

import (
	"syllabus_ai_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCoursePromptEmbedsEveryField(t *testing.T) {
	b := newTestPrompts(t)

	prompt, err := b.BuildCoursePrompt(CoursePromptData{
		CourseName:      "Intro to CS",
		Content:         "Programming fundamentals",
		Objectives:      "Write small programs",
		Prerequisites:   "None",
		Duration:        12,
		SessionsPerWeek: 2,
		HomeworkHours:   6,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Intro to CS")
	assert.Contains(t, prompt, "Programming fundamentals")
	assert.Contains(t, prompt, "Write small programs")
	assert.Contains(t, prompt, "None")
	assert.Contains(t, prompt, "12")
	assert.Contains(t, prompt, "2")
	assert.Contains(t, prompt, "6")
}

func TestBuildCoursePromptDeterministic(t *testing.T) {
	b := newTestPrompts(t)
	data := CoursePromptData{CourseName: "Algorithms", Duration: 3, SessionsPerWeek: 2, HomeworkHours: 4}

	first, err := b.BuildCoursePrompt(data)
	require.NoError(t, err)
	second, err := b.BuildCoursePrompt(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildSessionPromptExtraPrompt(t *testing.T) {
	b := newTestPrompts(t)
	data := SessionPromptData{
		CourseName:      "Algorithms",
		Topic:           "Sorting",
		Summary:         "Comparison sorts",
		SessionCount:    2,
		HoursPerSession: 2,
	}

	prompt, err := b.BuildSessionPrompt(data)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Sorting")
	assert.NotContains(t, prompt, "Extra:")

	data.ExtraPrompt = "focus on quicksort"
	prompt, err = b.BuildSessionPrompt(data)
	require.NoError(t, err)
	assert.Contains(t, prompt, "focus on quicksort")
}

func TestBuildPromptMissingTemplate(t *testing.T) {
	b := NewPromptBuilder(config.PromptConfig{
		CourseTemplate:  "does/not/exist.tmpl",
		SessionTemplate: "does/not/exist.tmpl",
	})

	_, err := b.BuildCoursePrompt(CoursePromptData{})
	assert.Error(t, err)
	_, err = b.BuildSessionPrompt(SessionPromptData{})
	assert.Error(t, err)
}
