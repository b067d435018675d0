// cmd/client/cmd/user/list.go
package user

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"usercrud/internal/app/client/render"
)

var (
	listSearch string
	listPage   int
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр одной страницы записей (по 10 на странице).

Поиск по подстроке в имени или email без учета регистра.
Страница за пределами диапазона не меняет текущую.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}

		if err := app.Load(cmd.Context()); err != nil {
			return err
		}

		if listSearch != "" {
			app.SearchChanged(listSearch)
		}
		for i := 1; i < listPage; i++ {
			app.NextPage()
		}

		page := app.View()
		out := deps.Out

		switch outputFormat() {
		case "json":
			return printRowsJSON(out, page)
		case "csv":
			return printRowsCSV(out, page)
		default:
			return printRowsTable(out, page)
		}
	},
}

// outputFormat - формат из флагов; по умолчанию таблица для терминала и csv для конвейера
func outputFormat() string {
	if listFormat != "" {
		return listFormat
	}
	if deps.JSON {
		return "json"
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "table"
	}
	return "csv"
}

func printRowsTable(out io.Writer, page render.Page) error {
	if len(page.Rows) == 0 {
		fmt.Fprintln(out, "Записи не найдены")
		fmt.Fprintln(out, page.Status)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tName\tAddress\tEmail\tPhone\tJob\tCompany\tBirthdate\tAge\tRetired\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t---\t---\t---\t\n")

	for _, r := range page.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t\n",
			r.ID,
			truncate(r.Name, 30),
			truncate(r.Address, 30),
			r.Email,
			r.PhoneNumber,
			truncate(r.Job, 20),
			truncate(r.Company, 20),
			r.Birthdate,
			r.Age,
			r.RetiredLabel(),
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", page.Status)
	return nil
}

type jsonRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Job         string `json:"job"`
	Company     string `json:"company"`
	Birthdate   string `json:"birthdate"`
	Age         int    `json:"age"`
	IsRetired   bool   `json:"isRetired"`
}

func printRowsJSON(out io.Writer, page render.Page) error {
	rows := make([]jsonRow, 0, len(page.Rows))
	for _, r := range page.Rows {
		rows = append(rows, jsonRow{
			ID:          r.ID.String(),
			Name:        r.Name,
			Address:     r.Address,
			Email:       r.Email,
			PhoneNumber: r.PhoneNumber,
			Job:         r.Job,
			Company:     r.Company,
			Birthdate:   r.Birthdate,
			Age:         r.Age,
			IsRetired:   r.Retired,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Rows   []jsonRow `json:"rows"`
		Status string    `json:"status"`
		Page   int       `json:"page"`
		Pages  int       `json:"pages"`
	}{
		Rows:   rows,
		Status: page.Status,
		Page:   page.Current,
		Pages:  page.Total,
	})
}

func printRowsCSV(out io.Writer, page render.Page) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "name", "address", "email", "phone_number", "job", "company", "birthdate", "age", "isRetired"}); err != nil {
		return err
	}

	for _, r := range page.Rows {
		err := w.Write([]string{
			r.ID.String(),
			r.Name,
			r.Address,
			r.Email,
			r.PhoneNumber,
			r.Job,
			r.Company,
			r.Birthdate,
			strconv.Itoa(r.Age),
			strconv.FormatBool(r.Retired),
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по имени или email")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "номер страницы")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "формат вывода (table, json, csv)")
}
