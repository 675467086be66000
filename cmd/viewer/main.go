// Viewer is a small sight glass for the live streams: it either watches
// chat lifecycle events (authenticated) or runs the anonymous side of the
// QR pairing handshake, printing whatever the server pushes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	chatpb "ichat/proto/chat"
	pairingpb "ichat/proto/pairing"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("ICHAT_ADDR", "localhost:8080"), "server address")
	mode := flag.String("mode", "chats", "chats | pairing")
	token := flag.String("token", os.Getenv("ICHAT_TOKEN"), "bearer token for authenticated streams")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()

	ctx := context.Background()

	switch *mode {
	case "pairing":
		watchPairing(ctx, conn)
	case "chats":
		watchChats(ctx, conn, *token)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

// watchPairing plays the anonymous viewer: it mints a device UUID (the
// real client would render it as a QR code) and waits for the terminal
// event carrying the login token.
func watchPairing(ctx context.Context, conn *grpc.ClientConn) {
	deviceUUID := uuid.NewString()
	fmt.Printf("Pairing device UUID: %s\n", deviceUUID)
	fmt.Println("Scan and confirm from an authenticated client to log this viewer in.")

	stream, err := pairingpb.NewPairingServiceClient(conn).
		Watch(ctx, &pairingpb.WatchRequest{DeviceUuid: deviceUUID})
	if err != nil {
		log.Fatalf("Failed to open pairing stream: %v", err)
	}

	for {
		evt, err := stream.Recv()
		if err == io.EOF {
			fmt.Println("Pairing stream ended.")
			return
		}
		if err != nil {
			log.Fatalf("Pairing stream error: %v", err)
		}

		switch evt.GetKind() {
		case pairingpb.PairingEvent_KIND_SCANNED:
			fmt.Println("Scanned, waiting for confirmation...")
		case pairingpb.PairingEvent_KIND_CONFIRMED:
			fmt.Printf("Confirmed. Token: %s\n", evt.GetToken())
		case pairingpb.PairingEvent_KIND_CANCELLED:
			fmt.Println("Cancelled by the scanner.")
		}
	}
}

func watchChats(ctx context.Context, conn *grpc.ClientConn, token string) {
	if token == "" {
		log.Fatal("Chat lifecycle stream needs -token (or ICHAT_TOKEN)")
	}
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	stream, err := chatpb.NewChatServiceClient(conn).
		SubscribeChats(ctx, &chatpb.SubscribeChatsRequest{})
	if err != nil {
		log.Fatalf("Failed to open chat stream: %v", err)
	}

	for {
		evt, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalf("Chat stream error: %v", err)
		}
		if chat := evt.GetChat(); chat != nil {
			fmt.Printf("%s chat=%d name=%q owner=%d\n",
				chat.GetKind(), chat.GetChat().GetId(),
				chat.GetChat().GetName(), chat.GetChat().GetOwnerId())
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
