package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/thevanityindia/vanity-server/internal/api/http/context"
	"github.com/thevanityindia/vanity-server/internal/api/http/handler"
	"github.com/thevanityindia/vanity-server/internal/api/http/middleware"
	"github.com/thevanityindia/vanity-server/internal/api/http/router"
	"github.com/thevanityindia/vanity-server/internal/config"
	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/mail"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/payment"
	"github.com/thevanityindia/vanity-server/internal/repository/memory"
	"github.com/thevanityindia/vanity-server/internal/repository/postgres"
	"github.com/thevanityindia/vanity-server/internal/server"
	"github.com/thevanityindia/vanity-server/internal/service"
	storage "github.com/thevanityindia/vanity-server/internal/storage/minio"
	"github.com/thevanityindia/vanity-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores groups the persistence interfaces so both backends wire the
// same way.
type stores struct {
	users     model.UserStore
	passcodes model.PasscodeStore
	products  model.ProductStore
	carts     model.CartStore
	wishlists model.WishlistStore
	addresses model.AddressStore
	orders    model.OrderStore
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	repos, degraded, db := connectStores(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	var mailSender model.EmailSender
	if cfg.Mail.APIKey != "" {
		mailSender = mail.NewSendGridSender(cfg.Mail.APIKey, cfg.Mail.From, logger)
	} else {
		logger.Info("no mail API key configured, passcodes will be logged")
		mailSender = mail.NewLogSender(logger)
	}

	objectStorage := connectObjectStorage(ctx, cfg, logger)

	var gateway model.PaymentGateway
	if cfg.Payment.KeyID != "" && cfg.Payment.KeySecret != "" {
		gateway = payment.NewGateway(cfg.Payment.Endpoint, cfg.Payment.KeyID, cfg.Payment.KeySecret)
	} else {
		logger.Info("no payment credentials configured, online payments disabled")
	}

	authService := service.NewAuth(repos.users, repos.passcodes, mailSender, tokenManager, logger)
	userService := service.NewUser(repos.users, repos.addresses, logger)
	catalogService := service.NewCatalog(repos.products, objectStorage, degraded, logger)
	cartService := service.NewCart(repos.carts, repos.products, logger)
	wishlistService := service.NewWishlist(repos.wishlists, repos.products, logger)
	orderService := service.NewOrder(repos.orders, repos.carts, repos.products, repos.addresses, logger)
	paymentService := service.NewPayment(gateway, cfg.Payment.KeySecret, logger)

	authenticate := middleware.NewAuthenticate(authService, repos.users, ctxMgr, handler.WriteError, logger)
	logging := middleware.NewLogging(logger)

	mux := router.New(router.Handlers{
		Auth:     handler.NewAuth(authService, logger),
		Product:  handler.NewProduct(catalogService, logger),
		Cart:     handler.NewCart(cartService, ctxMgr, logger),
		Wishlist: handler.NewWishlist(wishlistService, ctxMgr, logger),
		User:     handler.NewUser(userService, ctxMgr, logger),
		Order:    handler.NewOrder(orderService, ctxMgr, logger),
		Payment:  handler.NewPayment(paymentService, ctxMgr, logger),
		Health:   handler.NewHealth(catalogService, buildVersion),
	}, authenticate, logging, allowedOrigins(cfg.HTTP.AllowedOrigins))

	httpServer := server.NewHTTPServer(mux, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", httpServer.Address())
		if err := httpServer.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// connectStores opens the postgres backend, falling back to volatile
// in-memory stores when the database is unreachable so the storefront
// stays up in read-mostly degraded mode.
func connectStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (stores, bool, *postgres.Connection) {
	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("database unreachable, serving from in-memory stores", "error", err)
		return stores{
			users:     memory.NewUserRepository(),
			passcodes: memory.NewPasscodeRepository(),
			products:  memory.NewProductRepository(),
			carts:     memory.NewCartRepository(),
			wishlists: memory.NewWishlistRepository(),
			addresses: memory.NewAddressRepository(),
			orders:    memory.NewOrderRepository(),
		}, true, nil
	}

	return stores{
		users:     postgres.NewUserRepository(db),
		passcodes: postgres.NewPasscodeRepository(db),
		products:  postgres.NewProductRepository(db),
		carts:     postgres.NewCartRepository(db),
		wishlists: postgres.NewWishlistRepository(db),
		addresses: postgres.NewAddressRepository(db),
		orders:    postgres.NewOrderRepository(db),
	}, false, db
}

// connectObjectStorage initializes the image bucket client. Product
// image uploads are disabled when storage is not configured.
func connectObjectStorage(ctx context.Context, cfg *config.Config, logger *logger.Logger) model.ObjectStorage {
	if cfg.Storage.AccessKey == "" || cfg.Storage.SecretKey == "" {
		logger.Info("no object storage credentials configured, image uploads disabled")
		return nil
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Error("failed to create object storage client, image uploads disabled", "error", err)
		return nil
	}

	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Error("failed to initialize object storage bucket, image uploads disabled", "error", err)
		return nil
	}

	return storageClient
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// allowedOrigins parses the comma-separated origin list from config.
func allowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
