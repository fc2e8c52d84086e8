package message

const (
	InvalidCredentials = "Email or password is wrong."
	NotVerified        = "Email not verified."
	NotAuthorized      = "Not authorized."
	EmailInUse         = "Email in use."
	NotFound           = "Not found."
	InvalidInput       = "Invalid input."
	MissingAvatar      = "Missing avatar file."
	AlreadyVerified    = "Verification has already been passed."
	VerificationOK     = "Verification successful."
	VerificationSent   = "Verification email sent."
	Registered         = "Thank you for registering. A verification link was sent to your email."
	EnvErrFmt          = "environment variable is not set: %s"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
