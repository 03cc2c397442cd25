package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/noorix/hub/backend/auth"
	"github.com/noorix/hub/backend/config"
	"github.com/noorix/hub/backend/handlers"
	"github.com/noorix/hub/backend/middleware"
	"github.com/noorix/hub/backend/service"
	"github.com/noorix/hub/backend/store"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	config.ValidateEnv()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("mongodb")
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Warn("mongodb disconnect")
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("mongodb indexes")
	}

	google, err := auth.NewGoogleAuthenticator(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	if err != nil {
		logrus.WithError(err).Fatal("google oauth")
	}

	var s3Service *service.S3Service
	if cfg.S3Bucket != "" {
		s3Service, err = service.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey)
		if err != nil {
			logrus.WithError(err).Fatal("s3")
		}
	} else {
		logrus.Warn("AWS_S3_BUCKET not set; image uploads disabled")
	}

	var aiGenerator *service.AIGenerator
	if cfg.AIAPIKey != "" {
		aiGenerator = service.NewAIGenerator(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	} else {
		logrus.Warn("AI_API_KEY not set; draft generation disabled")
	}

	mailer := &service.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		To:       cfg.FeedbackTo,
	}

	guard := &auth.Guard{Directory: db, RootEmail: cfg.RootEmail}

	authHandler := &handlers.AuthHandler{
		DB:          db,
		Google:      google,
		Guard:       guard,
		JWTSecret:   cfg.JWTSecret,
		FrontendURL: cfg.FrontendURL,
	}
	usersHandler := &handlers.UsersHandler{DB: db, Guard: guard, RootEmail: cfg.RootEmail}
	blogsHandler := &handlers.BlogsHandler{DB: db, Guard: guard}
	experimentsHandler := &handlers.ExperimentsHandler{DB: db, Guard: guard}
	productsHandler := &handlers.ProductsHandler{DB: db, Guard: guard}
	handlesHandler := &handlers.ContentHandlesHandler{DB: db, Guard: guard}
	toolsHandler := &handlers.ContentToolsHandler{DB: db, Guard: guard}
	feedbackHandler := &handlers.FeedbackHandler{DB: db, Guard: guard, Mailer: mailer}
	uploadHandler := &handlers.UploadHandler{
		DB:       db,
		Guard:    guard,
		S3:       s3Service,
		MaxBytes: cfg.MaxUploadMB * 1024 * 1024,
	}
	generateHandler := &handlers.GenerateHandler{Guard: guard, AI: aiGenerator}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome to noorix hub."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/auth/google/login", authHandler.Login)
		r.Get("/auth/google/callback", authHandler.Callback)

		// Public reads
		r.Get("/blogs", blogsHandler.List)
		r.Get("/blogs/{id}", blogsHandler.Get)
		r.Get("/experiments", experimentsHandler.List)
		r.Get("/experiments/{id}", experimentsHandler.Get)
		r.Get("/products", productsHandler.List)
		r.Get("/products/{id}", productsHandler.Get)
		r.Get("/content-handles", handlesHandler.List)
		r.Get("/content-tools", toolsHandler.List)
		r.Get("/content-tools/{id}", toolsHandler.Get)
		r.Get("/images/*", uploadHandler.ServeImage)

		// Session required; each handler checks its own capability
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(cfg.JWTSecret))

			r.Get("/auth/me", authHandler.Me)
			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/users", usersHandler.List)
			r.Put("/users/{id}/role", usersHandler.ChangeRole)

			r.Post("/blogs", blogsHandler.Create)
			r.Put("/blogs/{id}", blogsHandler.Update)
			r.Delete("/blogs/{id}", blogsHandler.Delete)

			r.Post("/experiments", experimentsHandler.Create)
			r.Put("/experiments/{id}", experimentsHandler.Update)
			r.Delete("/experiments/{id}", experimentsHandler.Delete)

			r.Post("/products", productsHandler.Create)
			r.Put("/products/{id}", productsHandler.Update)
			r.Delete("/products/{id}", productsHandler.Delete)

			r.Post("/content-handles", handlesHandler.Create)
			r.Put("/content-handles/reorder", handlesHandler.Reorder)
			r.Put("/content-handles/{id}", handlesHandler.Update)
			r.Delete("/content-handles/{id}", handlesHandler.Delete)

			r.Post("/content-tools", toolsHandler.Create)
			r.Put("/content-tools/{id}", toolsHandler.Update)
			r.Delete("/content-tools/{id}", toolsHandler.Delete)

			r.Post("/feedback", feedbackHandler.Create)
			r.Get("/feedback/my-feedback", feedbackHandler.MyFeedback)
			r.Get("/feedback/list", feedbackHandler.List)
			r.Get("/feedback/{id}", feedbackHandler.Get)
			r.Put("/feedback/{id}", feedbackHandler.Update)
			r.Delete("/feedback/{id}", feedbackHandler.Delete)

			r.Post("/upload", uploadHandler.Upload)
			r.Post("/ai/generate", generateHandler.Generate)
		})
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logrus.Info("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("shutdown")
	}
}
