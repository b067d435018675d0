// Package web - браузерный интерфейс над client.App.
//
//	GET  /                    # Таблица, форма и уведомления
//	POST /search              # Изменить строку поиска
//	POST /page/prev           # Предыдущая страница
//	POST /page/next           # Следующая страница
//	POST /reload              # Перезагрузить коллекцию
//	POST /users/new           # Открыть пустую форму
//	POST /users/{id}/edit     # Открыть форму записи
//	POST /users               # Сохранить форму (id в скрытом поле)
//	POST /users/{id}/delete   # Удалить запись без подтверждения
//	POST /dialog/close        # Закрыть форму
//
// Каждый POST вызывает метод App и перенаправляет на / (post-redirect-get).
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"usercrud/internal/app/client"
	"usercrud/internal/domain/user"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// dialog - состояние формы добавления/редактирования
type dialog struct {
	Mode   client.DialogMode
	ID     user.ID
	Person user.Person
}

// Server - HTTP-сервер браузерного интерфейса. Сам реализует client.Presenter:
// уведомления копятся до следующего рендера, форма хранится до закрытия.
type Server struct {
	app    *client.App
	log    *slog.Logger
	tmpl   *template.Template
	router chi.Router

	mu     sync.Mutex
	flash  []client.Notification
	dialog *dialog
}

// New создает сервер и контроллер поверх хранилища
func New(store client.Store, log *slog.Logger) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"isEdit": func(m client.DialogMode) bool { return m == client.DialogEdit },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора шаблонов: %w", err)
	}

	s := &Server{
		log:  log.With("component", "web"),
		tmpl: tmpl,
	}
	s.app = client.New(store, s, log)
	s.router = s.routes()

	return s, nil
}

// App возвращает контроллер, которым управляет сервер
func (s *Server) App() *client.App {
	return s.app
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/", s.index)
	r.Post("/search", s.search)
	r.Post("/page/prev", s.prevPage)
	r.Post("/page/next", s.nextPage)
	r.Post("/reload", s.reload)
	r.Post("/dialog/close", s.closeDialog)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.submit)
		r.Post("/new", s.add)
		r.Post("/{id}/edit", s.edit)
		r.Post("/{id}/delete", s.delete)
	})

	return r
}

// Run загружает коллекцию и обслуживает addr до отмены ctx
func (s *Server) Run(ctx context.Context, addr string, ready func(url string)) error {
	// ошибку первой загрузки пользователь увидит в уведомлении
	_ = s.app.Load(ctx)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("starting web interface", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	if ready != nil {
		ready("http://" + ln.Addr().String())
	}
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down web interface")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) ShowNotification(kind client.NotificationKind, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flash = append(s.flash, client.Notification{Kind: kind, Title: title, Message: message})
}

func (s *Server) OpenDialog(mode client.DialogMode, u *user.User) {
	d := &dialog{Mode: mode}
	if u != nil {
		d.ID = u.ID
		d.Person = u.Person
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialog = d
}

func (s *Server) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialog = nil
}

// takeFlash возвращает накопленные уведомления и очищает их
func (s *Server) takeFlash() []client.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	flash := s.flash
	s.flash = nil
	return flash
}

func (s *Server) currentDialog() *dialog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog == nil {
		return nil
	}
	d := *s.dialog
	return &d
}

// keepDialog сохраняет введенные значения, если сохранение не удалось
func (s *Server) keepDialog(id user.ID, p user.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog != nil {
		s.dialog.ID = id
		s.dialog.Person = p
	}
}
