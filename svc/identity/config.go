package identity

import "time"

type Config struct {
	SessionSigningKey string        `env:"JWT_SIGNING_KEY,required"`                       // SessionSigningKey signs session JWTs.
	TokenSecret       string        `env:"TOKEN_SECRET,required"`                          // TokenSecret signs confirmation and email-change tokens.
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"1h"`                    // SessionTTL is the session JWT lifetime.
	ConfirmTTL        time.Duration `env:"EMAIL_CONFIRM_TTL" envDefault:"24h"`             // ConfirmTTL is the confirmation token lifetime.
	EmailChangeTTL    time.Duration `env:"EMAIL_CHANGE_TTL" envDefault:"1h"`               // EmailChangeTTL is the email-change token lifetime.
	Issuer            string        `env:"JWT_ISSUER" envDefault:"taskhub"`                // Issuer is the session JWT iss claim.
	Audience          string        `env:"JWT_AUDIENCE" envDefault:"taskhub"`              // Audience is the session JWT aud claim.
	PublicBaseURL     string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"` // PublicBaseURL is the prefix for links in outgoing emails.
}
