package interfaces

import "context"

// IMailGateway abstracts the outbound SMTP relay. Credentials travel with the
// call because senders authenticate with their own mailbox, not a service
// account.
type IMailGateway interface {
	VerifyCredentials(ctx context.Context, email, password string) error
	Send(ctx context.Context, from, password string, to []string, subject, htmlBody string) error
}
