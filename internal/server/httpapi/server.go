// Package httpapi exposes the REST surface of the inkspot server: resource
// routing, bearer-token authentication and the {"detail": "..."} error
// envelope.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/inkspot/inkspot/internal/logging"
	"github.com/inkspot/inkspot/internal/server/services"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	jwtSecret []byte

	users     *services.UserService
	blogs     *services.BlogService
	comments  *services.CommentService
	messages  *services.MessageService
	search    *services.SearchService
	media     *services.MediaService
	assistant *services.AssistantService
}

func NewHTTPServer(address string, l logging.Logger, secretKey string,
	us *services.UserService, bs *services.BlogService, cs *services.CommentService,
	ms *services.MessageService, ss *services.SearchService, meds *services.MediaService,
	as *services.AssistantService) *HTTPServer {

	return &HTTPServer{
		address:   address,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		users:     us,
		blogs:     bs,
		comments:  cs,
		messages:  ms,
		search:    ss,
		media:     meds,
		assistant: as,
	}
}

// Router builds the full route table under /api/v1.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware, s.loggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// auth
	api.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	api.HandleFunc("/auth/token", s.handleLogin).Methods("POST")

	// blogs
	api.HandleFunc("/blogs", s.optionalAuth(s.handleListBlogs)).Methods("GET")
	api.HandleFunc("/blogs", s.requireAuth(s.handleCreateBlog)).Methods("POST")
	api.HandleFunc("/blogs/user/me", s.requireAuth(s.handleMyBlogs)).Methods("GET")
	api.HandleFunc("/blogs/user/me/likes", s.requireAuth(s.handleMyLikedBlogs)).Methods("GET")
	api.HandleFunc("/blogs/user/me/favorites", s.requireAuth(s.handleMyFavoriteBlogs)).Methods("GET")
	api.HandleFunc("/blogs/{id:[0-9]+}", s.optionalAuth(s.handleGetBlog)).Methods("GET")
	api.HandleFunc("/blogs/{id:[0-9]+}", s.requireAuth(s.handleUpdateBlog)).Methods("PUT")
	api.HandleFunc("/blogs/{id:[0-9]+}", s.requireAuth(s.handleDeleteBlog)).Methods("DELETE")
	api.HandleFunc("/blogs/{id:[0-9]+}/like", s.requireAuth(s.handleLikeBlog)).Methods("POST")
	api.HandleFunc("/blogs/{id:[0-9]+}/unlike", s.requireAuth(s.handleUnlikeBlog)).Methods("POST")
	api.HandleFunc("/blogs/{id:[0-9]+}/favorite", s.requireAuth(s.handleFavoriteBlog)).Methods("POST")
	api.HandleFunc("/blogs/{id:[0-9]+}/unfavorite", s.requireAuth(s.handleUnfavoriteBlog)).Methods("POST")
	api.HandleFunc("/histories/me", s.requireAuth(s.handleReadingHistory)).Methods("GET")

	// comments
	api.HandleFunc("/comments/blog/{id:[0-9]+}", s.optionalAuth(s.handleBlogComments)).Methods("GET")
	api.HandleFunc("/comments", s.requireAuth(s.handleCreateComment)).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", s.requireAuth(s.handleUpdateComment)).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", s.requireAuth(s.handleDeleteComment)).Methods("DELETE")
	api.HandleFunc("/comments/{id:[0-9]+}/like", s.requireAuth(s.handleLikeComment)).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/like", s.requireAuth(s.handleUnlikeComment)).Methods("DELETE")

	// users
	api.HandleFunc("/users/me", s.requireAuth(s.handleMe)).Methods("GET")
	api.HandleFunc("/users/me", s.requireAuth(s.handleUpdateProfile)).Methods("PUT")
	api.HandleFunc("/users/me/avatar", s.requireAuth(s.handleAvatarTicket)).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", s.handleGetUser).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/followers", s.handleFollowers).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/following", s.handleFollowing).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/follow", s.requireAuth(s.handleFollow)).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/follow", s.requireAuth(s.handleUnfollow)).Methods("DELETE")
	api.HandleFunc("/users/{id:[0-9]+}/is_following", s.requireAuth(s.handleIsFollowing)).Methods("GET")

	// messages
	api.HandleFunc("/messages", s.requireAuth(s.handleConversations)).Methods("GET")
	api.HandleFunc("/messages", s.requireAuth(s.handleSendMessage)).Methods("POST")
	api.HandleFunc("/messages/unread/count", s.requireAuth(s.handleUnreadCount)).Methods("GET")
	api.HandleFunc("/messages/{id:[0-9]+}", s.requireAuth(s.handleConversation)).Methods("GET")
	api.HandleFunc("/messages/{id:[0-9]+}/read", s.requireAuth(s.handleMarkRead)).Methods("PUT")

	// search
	api.HandleFunc("/search/blogs", s.optionalAuth(s.handleSearchBlogs)).Methods("GET")
	api.HandleFunc("/search/history", s.requireAuth(s.handleSearchHistory)).Methods("GET")
	api.HandleFunc("/search", s.requireAuth(s.handleRecordSearch)).Methods("POST")

	// assistant
	api.HandleFunc("/ai/generate-suggestions", s.requireAuth(s.handleSuggestions)).Methods("POST")
	api.HandleFunc("/ai/recommended-articles", s.optionalAuth(s.handleRecommended)).Methods("GET")

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
