package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"titleguard/internal/filter"
	"titleguard/internal/models"
	"titleguard/internal/store"
)

// RuleService manages user title rules.
type RuleService struct {
	rules store.RuleStore
}

func NewRuleService(rules store.RuleStore) *RuleService {
	return &RuleService{rules: rules}
}

// AddRule stores a trimmed phrase. Empty phrases are a validation error and
// case-insensitive duplicates surface store.ErrDuplicate.
func (s *RuleService) AddRule(ctx context.Context, phrase string) (*models.TitleRule, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil, fmt.Errorf("%w: rule phrase cannot be empty", models.ErrValidation)
	}
	rule, err := s.rules.AddRule(ctx, phrase)
	if err != nil {
		return nil, fmt.Errorf("add rule %q: %w", phrase, err)
	}
	log.WithField("phrase", phrase).Info("rule added")
	return rule, nil
}

// ImportRules adds every rule in a newline-separated text, skipping
// duplicates. It returns how many were added.
func (s *RuleService) ImportRules(ctx context.Context, text string) (int, error) {
	added := 0
	for _, phrase := range filter.ParseRules(text) {
		if _, err := s.rules.AddRule(ctx, phrase); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				continue
			}
			return added, fmt.Errorf("import rule %q: %w", phrase, err)
		}
		added++
	}
	return added, nil
}

func (s *RuleService) ListRules(ctx context.Context) ([]models.TitleRule, error) {
	return s.rules.ListRules(ctx)
}

func (s *RuleService) RemoveRule(ctx context.Context, id int64) error {
	if err := s.rules.RemoveRule(ctx, id); err != nil {
		return fmt.Errorf("remove rule %d: %w", id, err)
	}
	return nil
}

// Phrases lists the stored rules as plain phrases, in insertion order.
func (s *RuleService) Phrases(ctx context.Context) ([]string, error) {
	rules, err := s.rules.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Phrase)
	}
	return out, nil
}
