package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"ichat/auth"
	grpcserver "ichat/grpc/server"
	accountpb "ichat/proto/account"
	chatpb "ichat/proto/chat"
	pairingpb "ichat/proto/pairing"
	"ichat/repositories"
	"ichat/runtime"
	"ichat/runtime/workers"
	"ichat/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle, so
// every defer executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Postgres & Redis
	db, err := repositories.OpenPostgres(config.PostgresURL)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Postgres...")
		_ = db.Close()
	}()

	redisOpts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return fmt.Errorf("redis config error: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer func() { _ = rdb.Close() }()

	// 3. The bus: built once here, handed to every producer and consumer.
	bus := runtime.NewBus(runtime.DefaultCapacity)
	defer bus.Close()

	feed := repositories.NewPgChangeFeed(log, config.PostgresURL)
	defer func() { _ = feed.Close() }()

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised change listener
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(runtime.NewChangeListener(log, bus, feed))
	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 6. Repositories & services
	users := repositories.NewUserRepository(db)
	chats := repositories.NewChatRepository(db)
	messages := repositories.NewMessageRepository(db)
	codes := repositories.NewRedisCodeStore(rdb, config.EmailCodeTTL)

	signer := auth.NewTokenSigner(config.JWTSecret, config.TokenTTL)
	verifier := auth.NewTokenVerifier(config.JWTSecret)

	authService := services.NewAuthService(users, codes, services.LogEmailSender{Log: log}, signer)
	chatService := services.NewChatService(chats, bus, config.DirectPublish)
	messageService := services.NewMessageService(messages, chats, bus, config.DirectPublish)
	pairingService := services.NewPairingService(bus, signer)

	// 7. gRPC server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor(verifier)),
		grpc.StreamInterceptor(auth.StreamInterceptor(verifier)),
	)
	accountpb.RegisterAccountServiceServer(s, grpcserver.NewAccountServer(authService))
	chatpb.RegisterChatServiceServer(s, grpcserver.NewChatServer(log, bus, chatService, messageService, chats))
	pairingpb.RegisterPairingServiceServer(s, grpcserver.NewPairingServer(log, bus, pairingService))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final cleanup
	s.GracefulStop()
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
