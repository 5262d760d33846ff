package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/nasermirzaei89/postfeed/timefmt"
	"github.com/nasermirzaei89/postfeed/timeline"
)

var (
	//go:embed templates/*
	templatesFS embed.FS

	//go:embed static/*
	staticFS embed.FS
)

const (
	defaultSiteTitle = "Ignite Feed"
	hxRequestTrue    = "true"
)

type Handler struct {
	mux           *http.ServeMux
	handler       http.Handler
	tpl           *template.Template
	static        fs.FS
	timelineSvc   *timeline.Service
	discussSvc    *discuss.Service
	timeFormatter *timefmt.Formatter
	cookieStore   *sessions.CookieStore
	sessionName   string
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(
	timelineSvc *timeline.Service,
	discussSvc *discuss.Service,
	timeFormatter *timefmt.Formatter,
	cookieStore *sessions.CookieStore,
	sessionName string,
	csrfAuthKeys []byte,
	csrfTrustedOrigins []string,
	secure bool,
) (*Handler, error) {
	h := &Handler{
		mux:           nil,
		handler:       nil,
		tpl:           nil,
		timelineSvc:   timelineSvc,
		discussSvc:    discussSvc,
		timeFormatter: timeFormatter,
		cookieStore:   cookieStore,
		sessionName:   sessionName,
	}

	{
		tpl, err := template.New("").Funcs(h.funcs()).ParseFS(templatesFS, "templates/*.gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse templates: %w", err)
		}

		h.tpl = tpl
	}

	{
		static, err := fs.Sub(staticFS, "static")
		if err != nil {
			return nil, fmt.Errorf("failed to sub static fs: %w", err)
		}

		h.static = static
	}

	{
		h.mux = &http.ServeMux{}
		h.handler = h.mux

		h.registerRoutes()
	}

	{
		csrfMiddleware := csrf.Protect(
			csrfAuthKeys,
			csrf.TrustedOrigins(csrfTrustedOrigins),
			csrf.Secure(secure),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(handleCSRFFailure)),
		)

		h.handler = csrfMiddleware(h.handler)

		if !secure {
			h.handler = plaintextMiddleware(h.handler)
		}

		h.handler = recoverMiddleware(h.handler)
	}

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("/", h.HandleIndex)

	h.mux.HandleFunc("GET /healthz", h.HandleHealthz)

	h.mux.Handle("GET /p/{postId}", h.HandleViewPostPage())
	h.mux.Handle("POST /p/{postId}/draft", h.HandleEditDraft())
	h.mux.Handle("POST /p/{postId}/comments", h.HandleSubmitComment())
	h.mux.Handle("POST /p/{postId}/comments/delete", h.HandleDeleteComment())
}

func (h *Handler) funcs() template.FuncMap {
	return template.FuncMap{
		"absoluteTime": h.timeFormatter.Absolute,
		"relativeTime": h.timeFormatter.Relative,
		"isoTime":      h.timeFormatter.ISO,
	}
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			if err := recover(); err != nil {
				slog.ErrorContext(
					ctx,
					"recovered from panic",
					"error",
					err,
					"stack",
					string(debug.Stack()),
				)

				http.Error(w, "internal error occurred", http.StatusInternalServerError)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

// plaintextMiddleware tells the csrf middleware that requests arrive over
// plain HTTP, so it checks origins against http:// instead of requiring a
// Referer.
func plaintextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func handleCSRFFailure(w http.ResponseWriter, r *http.Request) {
	slog.WarnContext(r.Context(), "csrf validation failed", "error", csrf.FailureReason(r))
	http.Error(w, "Forbidden", http.StatusForbidden)
}

func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == hxRequestTrue
}

// sanitizeReturnToPath only lets local absolute paths through.
func sanitizeReturnToPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return "/"
	}

	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}

	u, err := url.Parse(path)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return path
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, extraData map[string]any,
) {
	data := map[string]any{
		"CurrentPath": r.URL.Path,
		"Lang":        "pt-BR",
		"Dir":         "ltr",
	}

	maps.Copy(data, extraData)

	data["SiteTitle"] = defaultSiteTitle

	if extraData["SiteTitle"] != nil {
		data["SiteTitle"] = fmt.Sprintf("%s | %s", extraData["SiteTitle"], data["SiteTitle"])
	}

	err := h.tpl.ExecuteTemplate(w, name, data)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to render template", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		h.HandleHomePage(w, r)

		return
	}

	h.HandleStatic(w, r)
}

// HandleStatic serves static files.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	http.FileServer(http.FS(h.static)).ServeHTTP(w, r)
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) HandleHomePage(w http.ResponseWriter, r *http.Request) {
	posts, err := h.timelineSvc.ListPosts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	session, err := h.getSession(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	postViews := make([]*PostView, 0, len(posts))

	for _, post := range posts {
		view, err := h.resolveView(r.Context(), session, post.ID)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to resolve view", "postId", post.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		postViews = append(postViews, h.newPostView(r, post, view, "/#post-"+post.ID))
	}

	err = saveSession(w, r, session)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to save session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	data := map[string]any{
		"Posts": postViews,
	}

	h.renderTemplate(w, r, "home-page.gohtml", data)
}

func (h *Handler) HandleViewPostPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID := r.PathValue("postId")

		post, ok := h.getPost(w, r, postID)
		if !ok {
			return
		}

		session, err := h.getSession(r)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to get session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		view, err := h.resolveView(r.Context(), session, post.ID)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to resolve view", "postId", post.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		err = saveSession(w, r, session)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to save session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		data := map[string]any{
			"Post":      h.newPostView(r, post, view, "/p/"+post.ID),
			"SiteTitle": post.Author.Name,
		}

		h.renderTemplate(w, r, "view-post-page.gohtml", data)
	})
}

// HandleEditDraft keeps the server-side draft in sync with the comment input.
func (h *Handler) HandleEditDraft() http.Handler {
	return h.handleDispatch("comment-form-footer.gohtml", func(r *http.Request) []discuss.Message {
		return []discuss.Message{
			discuss.DraftEdited{Text: r.FormValue("comment")},
		}
	})
}

func (h *Handler) HandleSubmitComment() http.Handler {
	return h.handleDispatch("post.gohtml", func(r *http.Request) []discuss.Message {
		return []discuss.Message{
			discuss.DraftEdited{Text: r.FormValue("comment")},
			discuss.CommentSubmitted{},
		}
	})
}

func (h *Handler) HandleDeleteComment() http.Handler {
	return h.handleDispatch("post.gohtml", func(r *http.Request) []discuss.Message {
		return []discuss.Message{
			discuss.DeleteCommentRequested{Text: r.FormValue("content")},
		}
	})
}

// handleDispatch applies the messages built from the request to the view of
// the post. HTMX requests get the fragment back, others are redirected.
func (h *Handler) handleDispatch(
	fragment string,
	messages func(r *http.Request) []discuss.Message,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID := r.PathValue("postId")

		post, ok := h.getPost(w, r, postID)
		if !ok {
			return
		}

		err := r.ParseForm()
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to parse form", "error", err)
			http.Error(w, "Bad Request", http.StatusBadRequest)

			return
		}

		returnTo := sanitizeReturnToPath(r.FormValue("return_to"))

		session, err := h.getSession(r)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to get session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		view, err := h.resolveView(r.Context(), session, post.ID)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to resolve view", "postId", post.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		viewID := view.ID

		view, err = h.discussSvc.Dispatch(r.Context(), view.Key(), messages(r)...)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to dispatch messages", "viewId", viewID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		err = saveSession(w, r, session)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to save session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}

		if !isHTMXRequest(r) {
			http.Redirect(w, r, returnTo, http.StatusSeeOther)

			return
		}

		err = h.tpl.ExecuteTemplate(w, fragment, h.newPostView(r, post, view, returnTo))
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to render template", "name", fragment, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)

			return
		}
	})
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request, postID string) (*timeline.Post, bool) {
	post, err := h.timelineSvc.GetPost(r.Context(), postID)
	if err != nil {
		var postNotFoundErr *timeline.PostNotFoundError
		if errors.As(err, &postNotFoundErr) {
			http.Error(w, "Post not found", http.StatusNotFound)

			return nil, false
		}

		slog.ErrorContext(r.Context(), "failed to get post", "postId", postID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return nil, false
	}

	return post, true
}

// resolveView returns the view of the post mounted for this browser session,
// mounting a fresh one when there is none alive. A newly assigned session id
// is recorded in session; saving it is up to the caller.
func (h *Handler) resolveView(
	ctx context.Context,
	session *sessions.Session,
	postID string,
) (*discuss.View, error) {
	view, err := h.discussSvc.Mount(ctx, sessionID(session), postID)
	if err != nil {
		return nil, fmt.Errorf("failed to mount view: %w", err)
	}

	return view, nil
}
