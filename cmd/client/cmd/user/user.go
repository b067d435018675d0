package user

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"usercrud/internal/app/client"
	"usercrud/internal/app/client/console"
)

// Deps - зависимости команд, которые root заполняет в PersistentPreRunE
type Deps struct {
	Store client.Store
	Log   *slog.Logger
	Out   io.Writer
	JSON  bool
}

var deps *Deps

// Bind передает командам зависимости приложения
func Bind(d *Deps) {
	deps = d
}

// UserCmd - родительская команда для всех операций с записями
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Управление записями пользователей",
	Long:  `Просмотр, создание, обновление и удаление записей удаленного хранилища.`,
}

// newApp собирает контроллер с консольным presenter
func newApp() (*client.App, *console.Presenter, error) {
	if deps == nil {
		return nil, nil, fmt.Errorf("приложение не инициализировано")
	}

	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	p := console.NewPresenter(out)
	return client.New(deps.Store, p, deps.Log), p, nil
}
