package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/laracuentepedro/notely/internal/database"
)

type apiConfig struct {
	fileserverHits atomic.Int32
	db             *database.Queries
	jwtSecret      string
	paymentsKey    string
	platform       string
}

func main() {
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL must be set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	dbConn, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Error opening database: %s", err)
	}

	apiCfg := apiConfig{
		db:          database.New(dbConn),
		jwtSecret:   jwtSecret,
		paymentsKey: os.Getenv("PAYMENTS_KEY"),
		platform:    os.Getenv("PLATFORM"),
	}

	serverMux := http.NewServeMux()
	serverMux.Handle(
		"/app/",
		http.StripPrefix("/app",
			apiCfg.middlewareCountServerHit(
				http.FileServer(http.Dir(".")),
			),
		),
	)

	serverMux.HandleFunc("GET /v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	serverMux.Handle("GET /admin/metrics", apiCfg.metrics())
	serverMux.HandleFunc("POST /admin/reset", apiCfg.handlerReset)

	serverMux.HandleFunc("POST /v1/users", apiCfg.handlerUsersCreate)
	serverMux.HandleFunc("GET /v1/users", apiCfg.middlewareAuth(apiCfg.handlerUsersGet))
	serverMux.HandleFunc("POST /v1/login", apiCfg.handlerLogin)
	serverMux.HandleFunc("POST /v1/refresh", apiCfg.handlerRefresh)
	serverMux.HandleFunc("POST /v1/revoke", apiCfg.handlerRevoke)

	serverMux.HandleFunc("POST /v1/notes", apiCfg.middlewareAuth(apiCfg.handlerNotesCreate))
	serverMux.HandleFunc("GET /v1/notes", apiCfg.middlewareAuth(apiCfg.handlerNotesList))
	serverMux.HandleFunc("GET /v1/notes/{noteID}", apiCfg.middlewareAuth(apiCfg.handlerNotesGet))
	serverMux.HandleFunc("DELETE /v1/notes/{noteID}", apiCfg.middlewareAuth(apiCfg.handlerNotesDelete))

	serverMux.HandleFunc("POST /v1/webhooks/payments", apiCfg.handlerPaymentsWebhook)

	server := http.Server{
		Addr:    ":" + port,
		Handler: serverMux,
	}
	log.Printf("Serving on port: %s", port)
	log.Fatal(server.ListenAndServe())
}
