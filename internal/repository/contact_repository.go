package repository

import (
	"context"
	"time"

	"github.com/diagnosis/carnet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository persists contacts scoped by their owning user. Every
// read, update, and delete filters on both the contact id and the owner id;
// a contact owned by someone else behaves exactly like a missing one.
type ContactRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Contact, error)
	Create(ctx context.Context, ownerID int64, req *domain.CreateContactRequest) (*domain.Contact, error)
	Update(ctx context.Context, id, ownerID int64, patch *domain.ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, id, ownerID int64) (*domain.Contact, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactCols = `id, first_name, last_name, phone, user_id, created_at, updated_at`

func (r *contactRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Contact, error) {
	const q = `SELECT ` + contactCols + ` FROM contacts WHERE user_id = $1 ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) Create(ctx context.Context, ownerID int64, req *domain.CreateContactRequest) (*domain.Contact, error) {
	const q = `
		INSERT INTO contacts (first_name, last_name, phone, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + contactCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.Contact
	err := r.pool.QueryRow(ctx, q, req.FirstName, req.LastName, req.Phone, ownerID).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update applies a merge-patch in a single statement so the change is
// all-or-nothing. A row owned by another user matches nothing.
func (r *contactRepository) Update(ctx context.Context, id, ownerID int64, patch *domain.ContactPatch) (*domain.Contact, error) {
	const q = `
		UPDATE contacts
		SET
			first_name = COALESCE($3, first_name),
			last_name  = COALESCE($4, last_name),
			phone      = COALESCE($5, phone),
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + contactCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.Contact
	err := r.pool.QueryRow(ctx, q, id, ownerID, patch.FirstName, patch.LastName, patch.Phone).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	const q = `
		DELETE FROM contacts
		WHERE id = $1 AND user_id = $2
		RETURNING ` + contactCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.Contact
	err := r.pool.QueryRow(ctx, q, id, ownerID).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
