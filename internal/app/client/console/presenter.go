// Package console - presenter для разовых команд командной строки.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"usercrud/internal/app/client"
	"usercrud/internal/domain/user"
)

// Presenter печатает уведомления и запоминает запись, открытую в форме
type Presenter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color

	dialogOpen bool
	dialog     *user.User
	failed     bool
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (p *Presenter) ShowNotification(kind client.NotificationKind, title, message string) {
	c := p.success
	if kind == client.NotificationError {
		c = p.failure
		p.failed = true
	}

	fmt.Fprintf(p.out, "%s %s\n", c.Sprint(title), message)
}

func (p *Presenter) OpenDialog(_ client.DialogMode, u *user.User) {
	p.dialogOpen = true
	p.dialog = u
}

func (p *Presenter) CloseDialog() {
	p.dialogOpen = false
}

// Dialog возвращает запись, которой App заполнил форму редактирования
func (p *Presenter) Dialog() *user.User {
	return p.dialog
}

// DialogOpen сообщает, осталась ли форма открытой
func (p *Presenter) DialogOpen() bool {
	return p.dialogOpen
}

// Failed сообщает, было ли показано хотя бы одно уведомление об ошибке
func (p *Presenter) Failed() bool {
	return p.failed
}
