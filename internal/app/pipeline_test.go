package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/models"
)

// testConfig builds a config pointing every path into dir. The corpus
// directories intentionally do not exist: PDF-backed categories load empty
// corpora, which exercises the skip path without needing fixture PDFs.
func testConfig(dir string) *common.Config {
	config := common.NewDefaultConfig()
	config.Corpora.FinanceDir = filepath.Join(dir, "finance")
	config.Corpora.InsuranceDir = filepath.Join(dir, "insurance")
	config.Corpora.FAQPath = filepath.Join(dir, "faq.json")
	config.Questions.Path = filepath.Join(dir, "questions.json")
	config.Output.Path = filepath.Join(dir, "out", "answers.json")
	config.Cache.Enabled = false
	return config
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func readAnswers(t *testing.T, path string) models.AnswerSet {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var answers models.AnswerSet
	require.NoError(t, json.Unmarshal(data, &answers))
	return answers
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	config := testConfig(dir)

	writeJSON(t, config.Corpora.FAQPath, map[string]string{
		"101": "how do I reset my online banking password",
		"102": "what are the branch opening hours on weekends",
		"103": "how do I report a lost credit card",
	})

	writeJSON(t, config.Questions.Path, models.QuestionSet{Questions: []models.Question{
		{QID: 1, Category: models.CategoryFAQ, Query: "reset online banking password", Source: []int{101, 102, 103}},
		{QID: 2, Category: "unknown-category", Query: "anything", Source: []int{101}},
		{QID: 3, Category: models.CategoryFAQ, Query: "report a lost credit card", Source: []int{102, 103}},
		{QID: 4, Category: models.CategoryFinance, Query: "revenue", Source: []int{1, 2}}, // empty corpus, no match
	}})

	application, err := New(config, arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	require.NoError(t, application.Run(context.Background()))

	answers := readAnswers(t, config.Output.Path)

	// Unknown category and no-match questions are omitted; order follows
	// question input order.
	require.Len(t, answers.Answers, 2)
	assert.Equal(t, models.Answer{QID: 1, Retrieve: 101}, answers.Answers[0])
	assert.Equal(t, models.Answer{QID: 3, Retrieve: 103}, answers.Answers[1])
}

func TestRunFAQRestrictedToCandidates(t *testing.T) {
	dir := t.TempDir()
	config := testConfig(dir)

	writeJSON(t, config.Corpora.FAQPath, map[string]string{
		"201": "identical snippet text",
		"202": "identical snippet text",
		"203": "something else entirely",
	})

	// 201 would match but is outside the candidate set.
	writeJSON(t, config.Questions.Path, models.QuestionSet{Questions: []models.Question{
		{QID: 1, Category: models.CategoryFAQ, Query: "identical snippet text", Source: []int{202, 203}},
	}})

	application, err := New(config, arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	require.NoError(t, application.Run(context.Background()))

	answers := readAnswers(t, config.Output.Path)
	require.Len(t, answers.Answers, 1)
	assert.Equal(t, 202, answers.Answers[0].Retrieve)
}

func TestRunMissingQuestionFile(t *testing.T) {
	dir := t.TempDir()
	config := testConfig(dir)

	application, err := New(config, arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	assert.Error(t, application.Run(context.Background()))
}

func TestRunAnswerCountNeverExceedsQuestions(t *testing.T) {
	dir := t.TempDir()
	config := testConfig(dir)

	writeJSON(t, config.Corpora.FAQPath, map[string]string{"301": "only snippet"})

	writeJSON(t, config.Questions.Path, models.QuestionSet{Questions: []models.Question{
		{QID: 1, Category: models.CategoryFAQ, Query: "only snippet", Source: []int{301}},
		{QID: 2, Category: models.CategoryFAQ, Query: "no such candidates", Source: []int{888, 999}},
		{QID: 3, Category: models.CategoryInsurance, Query: "premium", Source: []int{5}},
	}})

	application, err := New(config, arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	require.NoError(t, application.Run(context.Background()))

	answers := readAnswers(t, config.Output.Path)
	assert.LessOrEqual(t, len(answers.Answers), 3)
	require.Len(t, answers.Answers, 1)
	assert.Equal(t, 301, answers.Answers[0].Retrieve)
}
