// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryReceivedEvent is published when a visitor submits the contact
// form. It carries enough for downstream consumers (mail notifications,
// CRM sync) to act without querying the primary database.
type InquiryReceivedEvent struct {
	InquiryID  uint64 `json:"inquiry_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}
