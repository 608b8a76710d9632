package message

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*Message, error)
	MarkRead(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const messageColumns = `
	id,
	sender_id,
	sender_type,
	sender_name,
	sender_email,
	sender_phone,
	recipient_id,
	content,
	read,
	original_id,
	created_at
`

func scanMessage(row interface{ Scan(...any) error }) (*Message, error) {
	var (
		msg        Message
		senderID   sql.NullString
		originalID sql.NullString
	)

	err := row.Scan(
		&msg.ID,
		&senderID,
		&msg.SenderType,
		&msg.SenderName,
		&msg.SenderEmail,
		&msg.SenderPhone,
		&msg.RecipientID,
		&msg.Content,
		&msg.Read,
		&originalID,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if senderID.Valid {
		msg.SenderID = &senderID.String
	}
	if originalID.Valid {
		msg.OriginalID = &originalID.String
	}

	return &msg, nil
}

func (r *repository) Create(ctx context.Context, msg *Message) error {
	var senderID, originalID sql.NullString
	if msg.SenderID != nil {
		senderID = sql.NullString{String: *msg.SenderID, Valid: true}
	}
	if msg.OriginalID != nil {
		originalID = sql.NullString{String: *msg.OriginalID, Valid: true}
	}

	query := `
	INSERT INTO messages (
		id,
		sender_id,
		sender_type,
		sender_name,
		sender_email,
		sender_phone,
		recipient_id,
		content,
		original_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING read, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		msg.ID,
		senderID,
		msg.SenderType,
		msg.SenderName,
		msg.SenderEmail,
		msg.SenderPhone,
		msg.RecipientID,
		msg.Content,
		originalID,
	).Scan(&msg.Read, &msg.CreatedAt)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	msg, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *repository) ListByRecipient(ctx context.Context, recipientID string) ([]*Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE recipient_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*Message, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE messages SET read = TRUE WHERE id = $1`, id)
	return err
}
