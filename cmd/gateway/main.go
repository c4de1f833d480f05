package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/campus-conduct/drl-server/internal/api/http"
	auth "github.com/campus-conduct/drl-server/internal/auth/middleware"
	"github.com/campus-conduct/drl-server/internal/config"
	"github.com/campus-conduct/drl-server/internal/criteria"
	"github.com/campus-conduct/drl-server/internal/db"
	"github.com/campus-conduct/drl-server/internal/period"
	"github.com/campus-conduct/drl-server/internal/rbac"
	"github.com/campus-conduct/drl-server/internal/sheet"
	"github.com/campus-conduct/drl-server/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	catalog := criteria.Default()
	sheets := sheet.NewSQLStore(dbh)
	periods := period.NewSQLStore(dbh)
	svc := sheet.NewService(sheets, periods, catalog, time.Now)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))

	// Protected API (JWT -> role in context -> RBAC -> explicit actor)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Get("/criteria", api.CatalogHandler(catalog))

		pr.With(rbac.Require("period:list")).
			Get("/periods", api.ListPeriodsHandler(periods))
		pr.With(rbac.Require("period:manage")).
			Post("/periods", api.PutPeriodHandler(periods))
		pr.With(rbac.Require("period:manage")).
			Put("/periods/{id}", api.PutPeriodHandler(periods))
		pr.With(rbac.Require("period:manage")).
			Delete("/periods/{id}", api.DeletePeriodHandler(periods))

		pr.With(rbac.RequireAny("sheet:list", "sheet:view-own")).
			Get("/sheets", api.ListSheetsHandler(svc))
		pr.With(rbac.RequireAny("sheet:view-own", "sheet:view-class", "sheet:view-all")).
			Get("/sheets/{studentID}/{periodID}", api.ViewSheetHandler(svc))
		pr.With(rbac.Require("sheet:save")).
			Put("/sheets/{studentID}/{periodID}", api.SaveSheetHandler(svc))
		pr.With(rbac.Require("sheet:submit")).
			Post("/sheets/{studentID}/{periodID}/submit", api.SubmitSheetHandler(svc))
		pr.With(rbac.Require("sheet:unsubmit")).
			Post("/sheets/{studentID}/{periodID}/unsubmit", api.UnsubmitSheetHandler(svc))

		pr.With(rbac.Require("proof:upload")).
			Post("/sheets/{studentID}/{periodID}/proofs/{criterionID}", api.UploadProofHandler(svc, bs))
		pr.With(rbac.Require("proof:delete")).
			Delete("/sheets/{studentID}/{periodID}/proofs/{criterionID}", api.DeleteProofHandler(svc, bs))

		pr.Route("/assets", func(ar chi.Router) {
			api.MountAssets(ar, bs)
		})

		pr.With(rbac.Require("report:export")).
			Get("/reports/{periodID}/export", api.ExportPeriodHandler(sheets))
	})

	log.Printf("drl-server listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
