package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"usercrud/internal/app/client/web"
)

var (
	webAddress string
	openWeb    bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Запустить браузерный интерфейс",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := cfg.WebAddress
		if webAddress != "" {
			addr = webAddress
		}

		srv, err := web.New(store, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx, addr, func(url string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Интерфейс доступен по адресу %s\n", url)
			if !openWeb {
				return
			}
			if err := browser.OpenURL(url); err != nil {
				log.Warn("Не удалось открыть браузер", "error", err)
			}
		})
	},
}

func init() {
	webCmd.Flags().StringVar(&webAddress, "addr", "", "адрес HTTP-сервера (WEB_ADDRESS)")
	webCmd.Flags().BoolVar(&openWeb, "open", false, "открыть интерфейс в браузере")
}
