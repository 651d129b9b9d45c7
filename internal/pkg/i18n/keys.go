package i18n

// Message ids every shipped template set must provide.
const (
	// MsgValidationUsernameNotNull indicates a missing username.
	MsgValidationUsernameNotNull = "validation.username.notNull"
	// MsgValidationUsernameSize indicates a username outside the length bounds.
	MsgValidationUsernameSize = "validation.username.size"
	// MsgValidationEmailNotNull indicates a missing email address.
	MsgValidationEmailNotNull = "validation.email.notNull"
	// MsgValidationEmailInvalid indicates a malformed email address.
	MsgValidationEmailInvalid = "validation.email.invalid"
	// MsgUserNotFound indicates a username lookup miss; {0} is the username.
	MsgUserNotFound = "user.not.found"
	// MsgRequestBodyInvalid indicates an undecodable request body.
	MsgRequestBodyInvalid = "request.body.invalid"
	// MsgInternalError indicates a generic server failure.
	MsgInternalError = "error.internal"
)

// Operator-facing log namespace; resolved against the default locale only.
const (
	// MsgUserNotFoundLog is the diagnostic text for a username lookup miss.
	MsgUserNotFoundLog = "user.not.found.log"
)
