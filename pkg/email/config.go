package email

// Config holds email delivery configuration.
// The Postmark tokens are optional so development environments can run with
// the file-based dev sender instead of a live transport.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
	DevSenderDir         string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
