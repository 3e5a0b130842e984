package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/dermatype/internal/classify"
)

type consultationRepo struct {
	db *sql.DB
}

func (r *consultationRepo) Save(ctx context.Context, c *Consultation) error {
	if c.ID == "" {
		return errors.New("consultation ID is required")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	answers, err := json.Marshal(c.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	demo, err := json.Marshal(c.Demographics)
	if err != nil {
		return fmt.Errorf("marshal demographics: %w", err)
	}
	result, err := json.Marshal(c.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO consultations (id, created_at, answers, demographics, result, advice)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.Format(time.RFC3339), string(answers), string(demo), string(result), c.Advice)
	if err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

func (r *consultationRepo) Get(ctx context.Context, id string) (*Consultation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, answers, demographics, result, advice
		FROM consultations WHERE id = ?`, id)

	var c Consultation
	var createdAt, answers, demo, result string
	err := row.Scan(&c.ID, &createdAt, &answers, &demo, &result, &c.Advice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan consultation: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &c.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if err := json.Unmarshal([]byte(demo), &c.Demographics); err != nil {
		return nil, fmt.Errorf("decode demographics: %w", err)
	}
	c.Result = &classify.Result{}
	if err := json.Unmarshal([]byte(result), c.Result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &c, nil
}

func (r *consultationRepo) List(ctx context.Context, limit int) ([]ConsultationSummary, error) {
	q := `SELECT id, created_at, result FROM consultations ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	defer rows.Close()

	var out []ConsultationSummary
	for rows.Next() {
		var id, createdAt, result string
		if err := rows.Scan(&id, &createdAt, &result); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}

		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		var res classify.Result
		if err := json.Unmarshal([]byte(result), &res); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}

		out = append(out, ConsultationSummary{
			ID:             id,
			CreatedAt:      ts,
			Primary:        res.Primary,
			Tier:           string(res.Tier),
			Confidence:     res.Confidence,
			QuestionsAsked: res.QuestionsAsked,
		})
	}
	return out, rows.Err()
}

func (r *consultationRepo) SetAdvice(ctx context.Context, id, advice string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE consultations SET advice = ? WHERE id = ?`, advice, id)
	if err != nil {
		return fmt.Errorf("update advice: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *consultationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *consultationRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultations`)
	if err != nil {
		return 0, fmt.Errorf("delete consultations: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}
