package server

import (
	"context"
	"log/slog"

	"ichat/auth"
	"ichat/domain/event"
	"ichat/errors"
	pb "ichat/proto/pairing"
	"ichat/runtime"
	"ichat/services"
	"ichat/subscription"
)

type PairingServer struct {
	pb.UnimplementedPairingServiceServer
	log            *slog.Logger
	bus            *runtime.Bus
	pairingService services.IPairingService
}

func NewPairingServer(log *slog.Logger, bus *runtime.Bus, pairingService services.IPairingService) *PairingServer {
	return &PairingServer{log: log, bus: bus, pairingService: pairingService}
}

func (s *PairingServer) Scan(ctx context.Context, in *pb.ScanRequest) (*pb.PairingAck, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pairingService.Scan(ctx, in.GetDeviceUuid(), userID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.PairingAck{Published: true}, nil
}

func (s *PairingServer) Confirm(ctx context.Context, in *pb.ConfirmRequest) (*pb.PairingAck, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pairingService.Confirm(ctx, in.GetDeviceUuid(), userID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.PairingAck{Published: true}, nil
}

func (s *PairingServer) Cancel(ctx context.Context, in *pb.CancelRequest) (*pb.PairingAck, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.pairingService.Cancel(ctx, in.GetDeviceUuid(), userID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.PairingAck{Published: true}, nil
}

// Watch is the viewer side of the handshake. The stream is anonymous and
// stays open until a terminal event for the watched device UUID or a
// disconnect. Expiration is the caller's concern; the server keeps no timer.
func (s *PairingServer) Watch(in *pb.WatchRequest, stream pb.PairingService_WatchServer) error {
	if _, ok := auth.UserIDFromContext(stream.Context()); ok {
		s.log.Debug("Pairing watch opened by authenticated client",
			"device_uuid", in.GetDeviceUuid())
	}

	filter := subscription.NewPairing(in.GetDeviceUuid())
	for evt := range subscription.Open(stream.Context(), s.log, s.bus, filter) {
		out, ok := toPairingEvent(evt)
		if !ok {
			continue
		}
		if err := stream.Send(out); err != nil {
			s.log.Warn("Failed to push pairing event", "error", err)
			return err
		}
	}
	return nil
}

func toPairingEvent(e event.DomainEvent) (*pb.PairingEvent, bool) {
	switch evt := e.(type) {
	case event.QRScanned:
		return &pb.PairingEvent{
			Kind:       pb.PairingEvent_KIND_SCANNED,
			DeviceUuid: evt.DeviceUUID,
		}, true
	case event.QRConfirmed:
		return &pb.PairingEvent{
			Kind:       pb.PairingEvent_KIND_CONFIRMED,
			DeviceUuid: evt.DeviceUUID,
			Token:      evt.Token,
		}, true
	case event.QRCancelled:
		return &pb.PairingEvent{
			Kind:       pb.PairingEvent_KIND_CANCELLED,
			DeviceUuid: evt.DeviceUUID,
		}, true
	default:
		return nil, false
	}
}
