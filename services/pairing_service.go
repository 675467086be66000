package services

import (
	"context"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	"ichat/runtime"
)

type IPairingService interface {
	Scan(ctx context.Context, deviceUUID string, userID domain.UserID) error
	Confirm(ctx context.Context, deviceUUID string, userID domain.UserID) error
	Cancel(ctx context.Context, deviceUUID string, userID domain.UserID) error
}

// PairingService drives the QR login handshake. There is no session
// record: the device UUID agreed out-of-band is the only correlation, and
// the bus is the only coordination between scanner and viewer. Two
// scanners racing on the same UUID are resolved by nothing but publish
// order; the viewer's filter stops at the first terminal event it sees.
type PairingService struct {
	bus    *runtime.Bus
	issuer TokenIssuer
}

func NewPairingService(bus *runtime.Bus, issuer TokenIssuer) IPairingService {
	return &PairingService{bus: bus, issuer: issuer}
}

func (s *PairingService) Scan(_ context.Context, deviceUUID string, _ domain.UserID) error {
	s.bus.Publish(event.QRScanned{DeviceUUID: deviceUUID})
	return nil
}

// Confirm signs the confirming user's own id into a fresh credential and
// hands it to whoever is watching the device UUID.
func (s *PairingService) Confirm(_ context.Context, deviceUUID string, userID domain.UserID) error {
	token, err := s.issuer.Sign(userID)
	if err != nil {
		return errors.ErrTokenGeneration
	}
	s.bus.Publish(event.QRConfirmed{DeviceUUID: deviceUUID, Token: token})
	return nil
}

func (s *PairingService) Cancel(_ context.Context, deviceUUID string, _ domain.UserID) error {
	s.bus.Publish(event.QRCancelled{DeviceUUID: deviceUUID})
	return nil
}
