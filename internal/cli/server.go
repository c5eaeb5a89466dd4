package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/20238643/UPSC-PrepHub/internal/auth"
	"github.com/20238643/UPSC-PrepHub/internal/config"
	"github.com/20238643/UPSC-PrepHub/internal/database"
	"github.com/20238643/UPSC-PrepHub/internal/gamification"
	"github.com/20238643/UPSC-PrepHub/internal/middleware"
	"github.com/20238643/UPSC-PrepHub/internal/questionbank"
	"github.com/20238643/UPSC-PrepHub/internal/store"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}

	var userStore store.UserStore
	if cfg.Database.URL != "" {
		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			return err
		}
		userStore = store.NewPostgres(db)
	} else {
		log.Println("[server] no database configured, using in-memory store")
		userStore = store.NewMemory()
	}

	bank, err := questionbank.Load(cfg.Questions.Path)
	if err != nil {
		log.Printf("[server] question bank unavailable (%v), serving empty bank", err)
		bank = questionbank.New(nil)
	}

	secret := []byte(cfg.Auth.JWTSecret)
	authHandler := auth.NewHandler(userStore, secret)
	gamHandler := gamification.NewHandler(gamification.NewService(userStore))
	bankHandler := questionbank.NewHandler(bank)

	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	bankHandler.RegisterRoutes(api)

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(secret))
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	gamHandler.RegisterRoutes(protected)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("[server] listening on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[server] listen failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("[server] shutting down...")
	case <-ctx.Done():
		log.Println("[server] context canceled, shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
