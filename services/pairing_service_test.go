package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ichat/domain/event"
	"ichat/errors"
	"ichat/mocks"
	"ichat/runtime"
)

func nextEvent(t *testing.T, cursor *runtime.Cursor) event.DomainEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	evt, err := cursor.Next(ctx)
	require.NoError(t, err)
	return evt
}

func TestPairingService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("scan announces the device", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		svc := NewPairingService(bus, mocks.NewMockTokenIssuer(ctrl))

		req.NoError(svc.Scan(context.Background(), "device-1", 42))
		req.Equal(event.QRScanned{DeviceUUID: "device-1"}, nextEvent(t, cursor))
	})

	t.Run("confirm mints a credential for the watcher", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		issuer := mocks.NewMockTokenIssuer(ctrl)
		issuer.EXPECT().Sign(int64(42)).Return("signed-token", nil)
		svc := NewPairingService(bus, issuer)

		req.NoError(svc.Confirm(context.Background(), "device-1", 42))
		req.Equal(event.QRConfirmed{DeviceUUID: "device-1", Token: "signed-token"},
			nextEvent(t, cursor))
	})

	t.Run("confirm publishes nothing when signing fails", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		issuer := mocks.NewMockTokenIssuer(ctrl)
		issuer.EXPECT().Sign(int64(42)).Return("", errors.ErrTokenGeneration)
		svc := NewPairingService(bus, issuer)

		err := svc.Confirm(context.Background(), "device-1", 42)
		req.ErrorIs(err, errors.ErrTokenGeneration)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = cursor.Next(ctx)
		req.ErrorIs(err, context.DeadlineExceeded)
	})

	t.Run("cancel announces the rejection", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		svc := NewPairingService(bus, mocks.NewMockTokenIssuer(ctrl))

		req.NoError(svc.Cancel(context.Background(), "device-1", 42))
		req.Equal(event.QRCancelled{DeviceUUID: "device-1"}, nextEvent(t, cursor))
	})
}
