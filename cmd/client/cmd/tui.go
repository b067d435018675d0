package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"usercrud/internal/app/client/tui"
	"usercrud/internal/utils/logger"
)

const tuiLogFile = "usercrud-tui.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Запустить терминальный интерфейс",
	Long: `Таблица записей в терминале.

Клавиши: / поиск, ←/→ страницы, a добавить, e изменить, d удалить,
r перезагрузить, q выход.

Экран занят интерфейсом, поэтому логи пишутся в usercrud-tui.log
только с флагом --debug.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var out io.Writer = io.Discard
		if debug {
			f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("ошибка открытия файла логов: %w", err)
			}
			defer f.Close()
			out = f
		}
		tuiLog := logger.NewWithWriter(cfg.Env, cfg.LogLevel, out)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
		defer stop()

		return tui.Run(ctx, store, tuiLog)
	},
}
