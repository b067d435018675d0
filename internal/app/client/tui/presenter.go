package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"usercrud/internal/app/client"
	"usercrud/internal/domain/user"
)

type notificationMsg struct {
	client.Notification
}

type openDialogMsg struct {
	mode client.DialogMode
	user *user.User
}

type closeDialogMsg struct{}

// presenter складывает вызовы App в очередь сообщений. Очередь разбирает
// цикл Update, поэтому модель меняется только там. program.Send здесь не
// подходит: App вызывает presenter и изнутри Update.
type presenter struct {
	mu    sync.Mutex
	queue []tea.Msg
}

func (p *presenter) push(msg tea.Msg) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.queue = append(p.queue, msg)
}

func (p *presenter) drain() []tea.Msg {
	p.mu.Lock()
	defer p.mu.Unlock()

	msgs := p.queue
	p.queue = nil
	return msgs
}

func (p *presenter) ShowNotification(kind client.NotificationKind, title, message string) {
	p.push(notificationMsg{client.Notification{Kind: kind, Title: title, Message: message}})
}

func (p *presenter) OpenDialog(mode client.DialogMode, u *user.User) {
	p.push(openDialogMsg{mode: mode, user: u})
}

func (p *presenter) CloseDialog() {
	p.push(closeDialogMsg{})
}
