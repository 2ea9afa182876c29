package main

import (
	"context"

	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/linemk/siya-shop/internal/app"
	"github.com/linemk/siya-shop/internal/app/handlers"
	"github.com/linemk/siya-shop/internal/config"
	"github.com/linemk/siya-shop/internal/gemini"
	"github.com/linemk/siya-shop/internal/jwt-new/jwtmiddleware"
	"github.com/linemk/siya-shop/internal/lib/logger"
	"github.com/linemk/siya-shop/internal/lib/logger/handlers/urllog"
	"github.com/linemk/siya-shop/internal/service"
	"github.com/linemk/siya-shop/internal/storage"
	"github.com/pkg/errors"
)

func main() {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// the migrator shares the config and needs neither of these, so they
	// are only enforced here
	if cfg.JWT.Secret == "" {
		log.Error("JWT_SECRET is not set")
		panic("JWT_SECRET is not set")
	}
	if cfg.Gemini.APIKey == "" {
		log.Error("GEMINI_API_KEY is not set")
		panic("GEMINI_API_KEY is not set")
	}

	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}
	defer application.DB.Close()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// catalog lives in postgres, cart and session are in-memory stores
	catalogRepo := storage.NewCatalogRepository(application.DB)
	cartStore := storage.NewCartStore()
	sessionStore := storage.NewSessionStore()

	geminiClient := gemini.NewClient(
		cfg.Gemini.BaseURL,
		cfg.Gemini.APIKey,
		cfg.Gemini.SuggestModel,
		cfg.Gemini.ImageModel,
		cfg.Gemini.Timeout,
	)

	authService := service.NewAuthService(application.Logger, sessionStore, time.Duration(application.Config.JWT.TokenTTL)*time.Minute)
	catalogService := service.NewCatalogService(application.Logger, catalogRepo)
	cartService := service.NewCartService(application.Logger, catalogRepo, cartStore)
	checkoutService := service.NewCheckoutService(application.Logger, cartStore, sessionStore)
	orderService := service.NewOrderService(application.Logger, sessionStore)
	designService := service.NewDesignService(application.Logger, geminiClient)

	router.Post("/api/auth", handlers.LoginHandler(application.Logger, authService))

	router.Get("/api/products", handlers.ProductsHandler(application.Logger, catalogService))
	router.Get("/api/products/{id}", handlers.ProductHandler(application.Logger, catalogService))

	router.Get("/api/cart", handlers.CartHandler(application.Logger, cartService))
	router.Post("/api/cart/items", handlers.AddToCartHandler(application.Logger, cartService))
	router.Patch("/api/cart/items/{productID}", handlers.UpdateCartItemHandler(application.Logger, cartService))
	router.Delete("/api/cart/items/{productID}", handlers.RemoveCartItemHandler(application.Logger, cartService))
	router.Delete("/api/cart", handlers.ClearCartHandler(application.Logger, cartService))

	// checkout stays public: guest checkout clears the cart without a record
	router.Post("/api/checkout", handlers.CheckoutHandler(application.Logger, checkoutService))

	router.Post("/api/design/suggest", handlers.SuggestDesignHandler(application.Logger, designService))
	router.Post("/api/design/image", handlers.GenerateImageHandler(application.Logger, designService))

	router.Group(func(r chi.Router) {
		jwtMW := jwtmiddleware.NewJWTMiddleware()
		r.Use(jwtMW)
		r.Get("/api/orders", handlers.OrdersHandler(application.Logger, orderService))
		r.Post("/api/logout", handlers.LogoutHandler(application.Logger, authService))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
