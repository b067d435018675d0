package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"usercrud/internal/app/client/render"
	"usercrud/internal/app/client/view"
	"usercrud/internal/domain/user"
)

// NotificationKind - тип уведомления
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// DialogMode - режим диалога формы
type DialogMode string

const (
	DialogAdd  DialogMode = "add"
	DialogEdit DialogMode = "edit"
)

// ErrUnknownRecord - запись с таким id отсутствует в загруженной коллекции
var ErrUnknownRecord = errors.New("запись не найдена в коллекции")

// Presenter - слой отображения, которым управляет App
type Presenter interface {
	ShowNotification(kind NotificationKind, title, message string)
	OpenDialog(mode DialogMode, u *user.User)
	CloseDialog()
}

// Notification - тексты уведомлений
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

var (
	notifyCreated      = Notification{NotificationSuccess, "Success", "User added successfully"}
	notifyCreateFailed = Notification{NotificationError, "Error", "Failed to add user"}
	notifyUpdated      = Notification{NotificationSuccess, "Success", "User updated successfully"}
	notifyUpdateFailed = Notification{NotificationError, "Error", "Failed to update user"}
	notifyDeleted      = Notification{NotificationSuccess, "Deleted!", "User has been deleted."}
	notifyDeleteFailed = Notification{NotificationError, "Error!", "Could not delete the user."}
	notifyLoadFailed   = Notification{NotificationError, "Error", "Failed to load users"}
)

// App - контроллер: владеет коллекцией и состоянием просмотра, обрабатывает
// события ввода и вызывает хранилище. Мьютекс не удерживается во время
// сетевых вызовов.
type App struct {
	store     Store
	presenter Presenter
	log       *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	state *view.State
}

// New создает контроллер поверх хранилища и слоя отображения
func New(store Store, presenter Presenter, log *slog.Logger) *App {
	return &App{
		store:     store,
		presenter: presenter,
		log:       log.With("component", "app"),
		now:       time.Now,
		state:     view.New(),
	}
}

// SetClock подменяет источник текущего времени для расчета возраста
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}

// Load заново получает всю коллекцию. При ошибке старая коллекция сохраняется.
func (a *App) Load(ctx context.Context) error {
	users, err := a.store.ListAll(ctx)
	if err != nil {
		a.log.Error("Не удалось загрузить записи", "error", err)
		a.notify(notifyLoadFailed)
		return fmt.Errorf("загрузка записей: %w", err)
	}

	a.mu.Lock()
	a.state.Replace(users)
	a.mu.Unlock()

	a.log.Debug("Коллекция обновлена", "count", len(users))
	return nil
}

// View возвращает отрисованную текущую страницу
func (a *App) View() render.Page {
	a.mu.Lock()
	snap := a.state.Snapshot()
	a.mu.Unlock()

	return render.Render(snap, a.now())
}

// SearchChanged меняет строку поиска, страница сбрасывается на первую
func (a *App) SearchChanged(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.SetSearch(text)
}

// PrevPage переходит на предыдущую страницу; на первой ничего не делает
func (a *App) PrevPage() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Prev()
}

// NextPage переходит на следующую страницу; на последней ничего не делает
func (a *App) NextPage() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Next()
}

// AddClicked открывает пустую форму
func (a *App) AddClicked() {
	a.presenter.OpenDialog(DialogAdd, nil)
}

// EditClicked открывает форму, заполненную данными записи id
func (a *App) EditClicked(id user.ID) error {
	a.mu.Lock()
	u, ok := a.state.Find(id)
	a.mu.Unlock()

	if !ok {
		a.log.Warn("Редактирование неизвестной записи", "id", id)
		return fmt.Errorf("%w: %s", ErrUnknownRecord, id)
	}

	a.presenter.OpenDialog(DialogEdit, &u)
	return nil
}

// FormSubmitted сохраняет данные формы: с id - обновление, без id - создание.
// При успехе коллекция перезагружается и диалог закрывается,
// при ошибке диалог остается открытым.
func (a *App) FormSubmitted(ctx context.Context, p user.Person, id user.ID) error {
	var (
		err              error
		success, failure Notification
	)

	if id.IsZero() {
		success, failure = notifyCreated, notifyCreateFailed
		err = a.store.Create(ctx, p)
	} else {
		success, failure = notifyUpdated, notifyUpdateFailed
		err = a.store.Update(ctx, id, p)
	}

	if err != nil {
		a.log.Error("Не удалось сохранить запись", "id", id, "error", err)
		a.notify(failure)
		return err
	}

	a.notify(success)
	a.reload(ctx)
	a.presenter.CloseDialog()
	return nil
}

// DeleteClicked удаляет запись без подтверждения и перезагружает коллекцию
func (a *App) DeleteClicked(ctx context.Context, id user.ID) error {
	err := a.store.Delete(ctx, id)
	if err != nil {
		a.log.Error("Не удалось удалить запись", "id", id, "error", err)
		a.notify(notifyDeleteFailed)
	} else {
		a.notify(notifyDeleted)
	}

	a.reload(ctx)
	return err
}

// reload перезагружает коллекцию после изменения; ошибка уже показана в Load
func (a *App) reload(ctx context.Context) {
	_ = a.Load(ctx)
}

func (a *App) notify(n Notification) {
	a.presenter.ShowNotification(n.Kind, n.Title, n.Message)
}
