// Package repository содержит хранилища: ростер активностей в памяти
// и репозиторий отзывов на базе SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"school-activities-service/internal/model"
)

// timeLayout — формат created_at в БД: ISO-8601 UTC фиксированной ширины,
// чтобы сортировка по TEXT-колонке совпадала с хронологической.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// TestimonialRepo реализует репозиторий отзывов на базе SQLite.
type TestimonialRepo struct {
	store *Store
}

// NewTestimonialRepo создаёт новый экземпляр TestimonialRepo c переданным хранилищем.
func NewTestimonialRepo(store *Store) *TestimonialRepo {
	return &TestimonialRepo{store: store}
}

// ListApproved возвращает одобренные отзывы, новые первыми.
func (r *TestimonialRepo) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := r.store.DB.QueryContext(ctx, `
SELECT id, author, text, approved, created_at
FROM testimonials
WHERE approved = 1
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	res := make([]model.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Insert сохраняет новый отзыв и возвращает его с присвоенным идентификатором.
// Время создания нормализуется к UTC и точности хранения.
func (r *TestimonialRepo) Insert(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	createdAt := t.CreatedAt.UTC().Truncate(time.Microsecond)

	res, err := r.store.DB.ExecContext(ctx, `
INSERT INTO testimonials (author, text, approved, created_at)
VALUES (?, ?, ?, ?)
`, t.Author, t.Text, boolToInt(t.Approved), createdAt.Format(timeLayout))
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("insert testimonial: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("last insert id: %w", err)
	}

	t.ID = id
	t.CreatedAt = createdAt
	return t, nil
}

// ToggleApproval переключает флаг approved (true→false, false→true) и
// возвращает обновлённый отзыв. Если отзыв не найден, возвращает ErrTestimonialNotFound.
func (r *TestimonialRepo) ToggleApproval(ctx context.Context, id int64) (model.Testimonial, error) {
	res, err := r.store.DB.ExecContext(ctx, `
UPDATE testimonials
SET approved = CASE approved WHEN 1 THEN 0 ELSE 1 END
WHERE id = ?
`, id)
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("update testimonial: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return model.Testimonial{}, ErrTestimonialNotFound
	}

	row := r.store.DB.QueryRowContext(ctx, `
SELECT id, author, text, approved, created_at
FROM testimonials
WHERE id = ?
`, id)

	t, err := scanTestimonial(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Testimonial{}, ErrTestimonialNotFound
		}
		return model.Testimonial{}, fmt.Errorf("get testimonial: %w", err)
	}
	return t, nil
}

// rowScanner описывает минимальный интерфейс строки результата,
// который реализуют как *sql.Row, так и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTestimonial(row rowScanner) (model.Testimonial, error) {
	var t model.Testimonial
	var approved int
	var createdAt string

	if err := row.Scan(&t.ID, &t.Author, &t.Text, &approved, &createdAt); err != nil {
		return model.Testimonial{}, err
	}

	// approved хранится как 0/1, преобразование только на границе хранилища
	t.Approved = approved == 1

	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("parse created_at: %w", err)
	}
	t.CreatedAt = ts
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
