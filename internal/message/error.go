package message

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("recipient id and content are required")

	// -- Authorization --
	ErrNotRecipient = errors.New("access denied")
	ErrVisitorReply = errors.New("cannot reply to visitor messages, only registered users can receive replies")

	// -- Resource State --
	ErrRecipientNotFound = errors.New("recipient not found or is not a caterer")
	ErrMessageNotFound   = errors.New("message not found")
)
