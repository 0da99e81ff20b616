package mail

// Payload is a plain outbound message. Delivery details (SMTP host, sender
// identity) belong to the adapter, not here.
type Payload struct {
	To      string
	Subject string
	Body    string
}
