package crud

// Kind classifies a notification for the status banner.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// MsgFixValidation is the banner shown when a create attempt fails validation.
const MsgFixValidation = "Please fix validation errors."

// Notification is one status message.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// NotificationChannel holds zero or one Notification. Posting replaces the
// current message; messages never expire on their own.
type NotificationChannel struct {
	current Notification
	set     bool
}

// Post replaces the current message.
func (c *NotificationChannel) Post(kind Kind, msg string) {
	c.current = Notification{Kind: kind, Message: msg}
	c.set = true
}

// Success posts a success message.
func (c *NotificationChannel) Success(msg string) { c.Post(KindSuccess, msg) }

// Error posts an error message.
func (c *NotificationChannel) Error(msg string) { c.Post(KindError, msg) }

// Current returns the message, if any.
func (c *NotificationChannel) Current() (Notification, bool) {
	return c.current, c.set
}
