package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	User    *UserHandler
	Article *ArticleHandler
	Reading *ReadingHandler
	Vocab   *VocabHandler
	Tools   *ToolsHandler
}

// NewRouter mounts all REST routes on a ServeMux. Authentication is
// enforced by middleware outside the mux; handlers behind /api/v1 rely on
// the user ID being present in context and fail with 401 when it is not.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/v1/users/me", h.User.Profile)
	mux.HandleFunc("PATCH /api/v1/users/me/target-level", h.User.UpdateTargetLevel)

	mux.HandleFunc("POST /api/v1/articles", h.Article.Create)
	mux.HandleFunc("POST /api/v1/articles/import", h.Article.ImportURL)
	mux.HandleFunc("GET /api/v1/articles", h.Article.List)
	mux.HandleFunc("GET /api/v1/articles/{id}", h.Article.Get)
	mux.HandleFunc("DELETE /api/v1/articles/{id}", h.Article.Delete)
	mux.HandleFunc("POST /api/v1/articles/{id}/clicks", h.Article.ClickWord)
	mux.HandleFunc("DELETE /api/v1/articles/{id}/clicks", h.Article.UnclickWord)
	mux.HandleFunc("GET /api/v1/articles/{id}/clicks", h.Article.ClickedWords)
	mux.HandleFunc("POST /api/v1/articles/{id}/finish", h.Reading.Finish)

	mux.HandleFunc("GET /api/v1/sessions", h.Reading.Sessions)
	mux.HandleFunc("GET /api/v1/level-history", h.Reading.LevelHistory)

	mux.HandleFunc("GET /api/v1/vocabulary", h.Vocab.List)
	mux.HandleFunc("GET /api/v1/vocabulary/stats", h.Vocab.Stats)
	mux.HandleFunc("POST /api/v1/vocabulary/{id}/master", h.Vocab.Master)
	mux.HandleFunc("POST /api/v1/vocabulary/{id}/restore", h.Vocab.Restore)
	mux.HandleFunc("POST /api/v1/vocabulary/{id}/meanings", h.Vocab.AddMeaning)
	mux.HandleFunc("GET /api/v1/vocabulary/{id}/meanings", h.Vocab.ListMeanings)
	mux.HandleFunc("DELETE /api/v1/vocabulary/meanings/{id}", h.Vocab.DeleteMeaning)

	mux.HandleFunc("POST /api/v1/tools/score", h.Tools.Score)
	mux.HandleFunc("GET /api/v1/tools/suggest", h.Tools.Suggest)

	return mux
}
