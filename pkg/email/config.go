package email

// Config holds email sending configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where sending is routed to a DevSender instead.
// SenderEmail and SupportEmail establish the From and Reply-To identity of
// every outbound email and are always required.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
