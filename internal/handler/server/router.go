package server

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/config"
	"github.com/bagdasarian/tuesday/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, staticDir string) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/boards", h.ListBoards)
	mux.HandleFunc("POST /api/boards", h.CreateBoard)
	mux.HandleFunc("GET /api/boards/{id}", h.GetBoard)
	mux.HandleFunc("POST /api/boards/{id}/columns", h.CreateColumn)

	mux.HandleFunc("POST /api/columns/{id}/tasks", h.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.DeleteTask)

	mux.HandleFunc("GET /api/users", h.ListUsers)
	mux.HandleFunc("GET /api/overview/weekly", h.GetWeeklyOverview)

	mux.HandleFunc("GET /api/admin/overview", h.GetAdminOverview)
	mux.HandleFunc("POST /api/admin/users", h.CreateUser)
	mux.HandleFunc("PUT /api/admin/users/{id}/role", h.UpdateUserRole)
	mux.HandleFunc("POST /api/admin/teams", h.CreateTeam)
	mux.HandleFunc("POST /api/admin/memberships", h.SaveMembership)
	mux.HandleFunc("PUT /api/admin/boards/{id}/team", h.AssignBoardTeam)

	// Собранный клиент отдается с того же адреса, API-маршруты выше приоритетнее
	if staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(staticDir)))
	}
}

// NewRouter возвращает полный обработчик приложения: маршруты, CORS и журнал запросов
func NewRouter(h *handler.Handler, cfg config.HTTPConfig, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, cfg.StaticDir)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type"},
	})

	return RequestLogger(logger)(c.Handler(mux))
}
