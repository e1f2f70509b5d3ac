package primary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"titleguard/internal/models"
	"titleguard/internal/store"
)

// --- Title Rules ---

func (s *StoreImpl) AddRule(ctx context.Context, phrase string) (*models.TitleRule, error) {
	rule := &models.TitleRule{Phrase: phrase, CreatedAt: time.Now().UTC()}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO title_rules (phrase, phrase_key, created_at) VALUES (?, ?, ?)`,
		phrase, strings.ToLower(phrase), rule.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("rule %q already exists: %w", phrase, store.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert rule: %w", err)
	}
	if rule.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read rule id: %w", err)
	}
	return rule, nil
}

func (s *StoreImpl) ListRules(ctx context.Context) ([]models.TitleRule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, phrase, created_at FROM title_rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	rules := []models.TitleRule{}
	for rows.Next() {
		var r models.TitleRule
		if err := rows.Scan(&r.ID, &r.Phrase, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (s *StoreImpl) RemoveRule(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM title_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule %d: %w", id, err)
	}
	return expectOneRow(res)
}
