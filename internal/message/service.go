package message

import (
	"context"

	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory is the slice of the account repository the inbox needs:
// resolving recipients that must be caterers.
type Directory interface {
	GetCatererByID(ctx context.Context, id string) (*user.Account, error)
}

// Service defines the business logic for the inbox. Buyers and
// visitors write to caterers; caterers answer registered senders with
// Reply, which lands in the buyer's own inbox.
type Service interface {
	Send(ctx context.Context, params SendParams) (*Message, error)
	Reply(ctx context.Context, replierID, messageID, content string) (*Message, error)
	ListForRecipient(ctx context.Context, recipientID string) ([]*Message, error)
	MarkRead(ctx context.Context, messageID, readerID string) error
}

type service struct {
	repo      Repository
	directory Directory
}

func NewService(repo Repository, directory Directory) Service {
	return &service{repo: repo, directory: directory}
}

// Send stores a message addressed to a caterer. Anonymous visitors may
// send too; their identity fields get placeholder defaults.
func (s *service) Send(ctx context.Context, params SendParams) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Send"),
		zap.String("recipient_id", params.RecipientID),
	)

	if params.RecipientID == "" || params.Content == "" {
		return nil, ErrMissingFields
	}

	recipient, err := s.directory.GetCatererByID(ctx, params.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	msg := &Message{
		ID:          uuid.NewString(),
		SenderName:  params.SenderName,
		SenderEmail: params.SenderEmail,
		SenderPhone: params.SenderPhone,
		RecipientID: params.RecipientID,
		Content:     params.Content,
	}

	if msg.SenderName == "" {
		msg.SenderName = "Anonymous"
	}
	if msg.SenderEmail == "" {
		msg.SenderEmail = "anonymous@example.com"
	}

	if params.SenderID != "" {
		senderID := params.SenderID
		msg.SenderID = &senderID
		msg.SenderType = SenderType(params.SenderRole)
	} else {
		msg.SenderType = SenderVisitor
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		log.Error("failed to store message", zap.Error(err))
		return nil, err
	}

	log.Info("message sent", zap.String("message_id", msg.ID))
	return msg, nil
}

// Reply answers a received message with a new one addressed back to
// the original sender. Only the recipient may reply, and visitors have
// no inbox to reply to.
func (s *service) Reply(ctx context.Context, replierID, messageID, content string) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Reply"),
		zap.String("message_id", messageID),
	)

	if messageID == "" || content == "" {
		return nil, ErrMissingFields
	}

	original, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrMessageNotFound
	}
	if original.RecipientID != replierID {
		return nil, ErrNotRecipient
	}
	if original.SenderType == SenderVisitor || original.SenderID == nil {
		return nil, ErrVisitorReply
	}

	senderID := replierID
	reply := &Message{
		ID:          uuid.NewString(),
		SenderID:    &senderID,
		SenderType:  SenderCaterer,
		SenderName:  "Caterer",
		SenderEmail: "no-email@example.com",
		RecipientID: *original.SenderID,
		Content:     content,
		OriginalID:  &original.ID,
	}

	// Fill the sender identity from the replier's account when we can.
	if s.directory != nil {
		if acct, err := s.directory.GetCatererByID(ctx, replierID); err == nil && acct != nil {
			reply.SenderName = acct.Username
			if acct.Caterer != nil && acct.Caterer.BusinessName != "" {
				reply.SenderName = acct.Caterer.BusinessName
			}
			reply.SenderPhone = acct.Phone
		}
	}

	if err := s.repo.Create(ctx, reply); err != nil {
		log.Error("failed to store reply", zap.Error(err))
		return nil, err
	}

	log.Info("reply sent", zap.String("reply_id", reply.ID))
	return reply, nil
}

func (s *service) ListForRecipient(ctx context.Context, recipientID string) ([]*Message, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *service) MarkRead(ctx context.Context, messageID, readerID string) error {
	msg, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if msg.RecipientID != readerID {
		return ErrNotRecipient
	}

	return s.repo.MarkRead(ctx, messageID)
}
