package interfaces

// Mailer sends the password-recovery mail. The reset URL embeds the
// plaintext one-time secret; implementations must not persist or log it.
type Mailer interface {
	SendResetEmail(to string, resetURL string) error
}
