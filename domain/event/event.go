package event

import "ichat/domain"

// DomainEvent is the closed set of events carried by the bus. Adding a
// variant means touching every filter that matches on it, which is the
// point: filters do exhaustive type switches, not open dispatch.
//
// Payloads are value snapshots taken at publish time. Consumers must not
// assume they are still fresh when the event is delivered.
type DomainEvent interface {
	domainEvent()
}

type ChatCreated struct {
	Chat domain.Chat
}

type ChatOwnerChanged struct {
	Chat domain.Chat
}

type ChatNameChanged struct {
	Chat domain.Chat
}

// ChatDeleted carries the last known snapshot of the removed chat.
type ChatDeleted struct {
	Chat domain.Chat
}

type NewMessage struct {
	Message domain.Message
}

// QRScanned is published by an authenticated mobile client after it reads
// the device UUID off a QR code displayed by an anonymous viewer.
type QRScanned struct {
	DeviceUUID string
}

// QRConfirmed ends the pairing handshake; Token authenticates the viewer.
type QRConfirmed struct {
	DeviceUUID string
	Token      string
}

type QRCancelled struct {
	DeviceUUID string
}

func (ChatCreated) domainEvent()      {}
func (ChatOwnerChanged) domainEvent() {}
func (ChatNameChanged) domainEvent()  {}
func (ChatDeleted) domainEvent()      {}
func (NewMessage) domainEvent()       {}
func (QRScanned) domainEvent()        {}
func (QRConfirmed) domainEvent()      {}
func (QRCancelled) domainEvent()      {}
