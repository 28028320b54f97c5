package request

// EmailVerifyRequest checks a sender's SMTP credentials.
type EmailVerifyRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EmailRecipientRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EmailSendRequest relays an HTML mail. Sender credentials are optional and
// fall back to the DEFAULT_SMTP_* environment variables.
type EmailSendRequest struct {
	RecipientEmail string                  `json:"recipient_email"`
	Recipients     []EmailRecipientRequest `json:"recipients"`
	Subject        string                  `json:"subject" binding:"required"`
	Body           string                  `json:"body" binding:"required"`
	SenderEmail    string                  `json:"sender_email"`
	SenderPassword string                  `json:"sender_password"`
}

// ResolveRecipients flattens recipient_email + recipients into one list,
// dropping empty entries.
func (r EmailSendRequest) ResolveRecipients() []string {
	out := make([]string, 0, len(r.Recipients)+1)
	if r.RecipientEmail != "" {
		out = append(out, r.RecipientEmail)
	}
	for _, rec := range r.Recipients {
		if rec.Email != "" {
			out = append(out, rec.Email)
		}
	}
	return out
}
