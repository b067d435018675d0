package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"usercrud/internal/app/client"
	"usercrud/internal/app/client/render"
	"usercrud/internal/domain/user"
)

type indexData struct {
	Page          render.Page
	Notifications []client.Notification
	Dialog        *dialog
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Page:          s.app.View(),
		Notifications: s.takeFlash(),
		Dialog:        s.currentDialog(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.Error("template execute", "error", err)
	}
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	s.app.SearchChanged(r.PostFormValue("q"))
	redirectHome(w, r)
}

func (s *Server) prevPage(w http.ResponseWriter, r *http.Request) {
	s.app.PrevPage()
	redirectHome(w, r)
}

func (s *Server) nextPage(w http.ResponseWriter, r *http.Request) {
	s.app.NextPage()
	redirectHome(w, r)
}

func (s *Server) reload(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Load(r.Context())
	redirectHome(w, r)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	s.app.AddClicked()
	redirectHome(w, r)
}

func (s *Server) edit(w http.ResponseWriter, r *http.Request) {
	if err := s.app.EditClicked(user.ID(chi.URLParam(r, "id"))); err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	redirectHome(w, r)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	id := user.ID(strings.TrimSpace(r.PostForm.Get("id")))
	p := personFromForm(r)

	if err := s.app.FormSubmitted(r.Context(), p, id); err != nil {
		s.keepDialog(id, p)
	}
	redirectHome(w, r)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	_ = s.app.DeleteClicked(r.Context(), user.ID(chi.URLParam(r, "id")))
	redirectHome(w, r)
}

func (s *Server) closeDialog(w http.ResponseWriter, r *http.Request) {
	s.CloseDialog()
	redirectHome(w, r)
}

// personFromForm собирает запись из полей формы без проверки форматов.
// Неразборчивая дата остается нулевой, ее отклонит хранилище.
func personFromForm(r *http.Request) user.Person {
	birthdate, _ := user.ParseDate(strings.TrimSpace(r.PostForm.Get("birthdate")))

	return user.Person{
		Name:        r.PostForm.Get("name"),
		Address:     r.PostForm.Get("address"),
		Email:       r.PostForm.Get("email"),
		PhoneNumber: r.PostForm.Get("phone_number"),
		Job:         r.PostForm.Get("job"),
		Company:     r.PostForm.Get("company"),
		Birthdate:   birthdate,
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
