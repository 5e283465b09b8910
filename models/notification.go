package models

// Delivery channels
const (
	ChannelLive   = "live"
	ChannelDryRun = "dry-run"
)

// Verification failure reasons. The controller maps "token missing" and
// "token rejected" to 400 and "verification error" to 500, so the gate must
// keep service outages distinct from rejected tokens.
const (
	ReasonTokenMissing  = "token missing"
	ReasonTokenRejected = "token rejected"
	ReasonServiceError  = "verification error"
)

// VerificationResult is the outcome of one human-verification check.
// Produced once per submission; never cached or reused.
type VerificationResult struct {
	Passed bool
	Reason string
}

// NotificationMessage is one outbound email, in both renderings
type NotificationMessage struct {
	Recipient string
	ReplyTo   string
	Subject   string
	PlainText string
	RichText  string
}

// DeliveryResult describes one attempted send
type DeliveryResult struct {
	Channel   string // "live" or "dry-run"
	Delivered bool
	Err       error
}

// DispatchOutcome is the result of sending the operator/acknowledgment pair.
// Partial success is never reported as success: if either send fails the
// dispatch as a whole is failed.
type DispatchOutcome struct {
	Operator  DeliveryResult
	Submitter DeliveryResult
	DryRun    bool
}
