package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
)

// Store implements the storage interfaces backed by PostgreSQL. Identity and
// default timestamps come from the database (BIGSERIAL, DEFAULT now()).
type Store struct {
	db *sql.DB
}

var _ storage.ContactStore = (*Store)(nil)
var _ storage.BlogStore = (*Store)(nil)
var _ storage.HoroscopeStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// --- ContactStore -----------------------------------------------------------

func (s *Store) CreateContact(ctx context.Context, in contact.Insert) (contact.Submission, error) {
	sub := contact.Submission{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Query: in.Query,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_submissions (name, email, phone, query)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, in.Name, in.Email, in.Phone, in.Query).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("insert contact: %w", err)
	}
	return sub, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]contact.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, query, created_at
		FROM contact_submissions
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []contact.Submission
	for rows.Next() {
		var sub contact.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Query, &sub.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, rows.Err()
}

// --- BlogStore --------------------------------------------------------------

func (s *Store) CreatePost(ctx context.Context, in blog.Insert) (blog.Post, error) {
	post := blog.Post{
		Title:   in.Title,
		Content: in.Content,
		Excerpt: in.Excerpt,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (title, content, excerpt)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, in.Title, in.Content, in.Excerpt).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return blog.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (blog.Post, error) {
	var post blog.Post
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, excerpt, created_at
		FROM blog_posts
		WHERE id = $1
	`, id).Scan(&post.ID, &post.Title, &post.Content, &post.Excerpt, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return blog.Post{}, storage.ErrNotFound
	}
	if err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

func (s *Store) ListPosts(ctx context.Context) ([]blog.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, excerpt, created_at
		FROM blog_posts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []blog.Post
	for rows.Next() {
		var post blog.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Excerpt, &post.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

func (s *Store) CountPosts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	return count, err
}

// --- HoroscopeStore ---------------------------------------------------------

func (s *Store) CreateHoroscope(ctx context.Context, in horoscope.Insert) (horoscope.Horoscope, error) {
	h := horoscope.Horoscope{
		Sign:       in.Sign,
		Prediction: in.Prediction,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO horoscopes (sign, prediction)
		VALUES ($1, $2)
		RETURNING id, date
	`, in.Sign, in.Prediction).Scan(&h.ID, &h.Date)
	if err != nil {
		return horoscope.Horoscope{}, fmt.Errorf("insert horoscope: %w", err)
	}
	return h, nil
}

func (s *Store) ListHoroscopes(ctx context.Context) ([]horoscope.Horoscope, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sign, prediction, date
		FROM horoscopes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []horoscope.Horoscope
	for rows.Next() {
		var h horoscope.Horoscope
		if err := rows.Scan(&h.ID, &h.Sign, &h.Prediction, &h.Date); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (s *Store) CountHoroscopes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM horoscopes`).Scan(&count)
	return count, err
}

func (s *Store) SetPrediction(ctx context.Context, sign, prediction string, date time.Time) (horoscope.Horoscope, error) {
	var h horoscope.Horoscope
	err := s.db.QueryRowContext(ctx, `
		UPDATE horoscopes
		SET prediction = $2, date = $3
		WHERE sign = $1
		RETURNING id, sign, prediction, date
	`, sign, prediction, date.UTC()).Scan(&h.ID, &h.Sign, &h.Prediction, &h.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return horoscope.Horoscope{}, fmt.Errorf("horoscope for %s: %w", sign, storage.ErrNotFound)
	}
	if err != nil {
		return horoscope.Horoscope{}, err
	}
	return h, nil
}
