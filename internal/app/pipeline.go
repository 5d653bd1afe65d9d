package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/corpus"
)

// Run executes the retrieval pipeline once: load questions, load corpora,
// retrieve per question, write the answers file. Per-question failures are
// absorbed; only an unreadable question file or an unwritable output file
// is fatal.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	questions, err := a.loadQuestions()
	if err != nil {
		return err
	}

	financeCorpus := a.loader.LoadDirectory(ctx, a.config.Corpora.FinanceDir)
	insuranceCorpus := a.loader.LoadDirectory(ctx, a.config.Corpora.InsuranceDir)
	faqCorpus := corpus.LoadFAQ(a.config.Corpora.FAQPath, a.logger)

	answers := models.AnswerSet{Answers: []models.Answer{}}
	skipped := 0

	for _, question := range questions.Questions {
		if err := question.Validate(); err != nil {
			a.logger.Warn().
				Err(err).
				Int("qid", question.QID).
				Str("category", question.Category).
				Msg("Skipping invalid question")
			skipped++
			continue
		}

		var retrieved int
		var ok bool

		switch question.Category {
		case models.CategoryFinance:
			retrieved, ok = a.retriever.Retrieve(question.Query, question.Source, financeCorpus)
		case models.CategoryInsurance:
			retrieved, ok = a.retriever.Retrieve(question.Query, question.Source, insuranceCorpus)
		case models.CategoryFAQ:
			retrieved, ok = a.retriever.Retrieve(question.Query, question.Source, faqCorpus.Subset(question.Source))
		default:
			// Unreachable after validation, kept as a guard.
			a.logger.Warn().
				Int("qid", question.QID).
				Str("category", question.Category).
				Msg("Skipping question with unknown category")
			skipped++
			continue
		}

		if !ok {
			skipped++
			continue
		}

		answers.Answers = append(answers.Answers, models.Answer{
			QID:      question.QID,
			Retrieve: retrieved,
		})
	}

	if err := a.writeAnswers(&answers); err != nil {
		return err
	}

	a.logger.Info().
		Int("questions", len(questions.Questions)).
		Int("answered", len(answers.Answers)).
		Int("skipped", skipped).
		Str("output", a.config.Output.Path).
		Str("elapsed", time.Since(start).Round(time.Millisecond).String()).
		Msg("Retrieval run complete")

	return nil
}

// loadQuestions reads the question file. There is nothing to do without
// it, so failure here is fatal for the run.
func (a *App) loadQuestions() (*models.QuestionSet, error) {
	data, err := os.ReadFile(a.config.Questions.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file %s: %w", a.config.Questions.Path, err)
	}

	var questions models.QuestionSet
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question file %s: %w", a.config.Questions.Path, err)
	}

	a.logger.Info().
		Str("path", a.config.Questions.Path).
		Int("questions", len(questions.Questions)).
		Msg("Questions loaded")

	return &questions, nil
}

// writeAnswers writes the answer set as indented JSON, creating the output
// directory first.
func (a *App) writeAnswers(answers *models.AnswerSet) error {
	if dir := filepath.Dir(a.config.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(answers, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	if err := os.WriteFile(a.config.Output.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write answers file %s: %w", a.config.Output.Path, err)
	}

	return nil
}
