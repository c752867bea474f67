package account

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"accountkeeper/internal/domain/account"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatCSV    = "csv"
)

var Formats = []string{FormatSimple, FormatTable, FormatJSON, FormatYAML, FormatCSV}

// printAccounts выводит список в выбранном формате. Пароли скрываются,
// если showPassword == false.
func printAccounts(w io.Writer, format string, accounts []account.Account, showPassword bool) error {
	if !showPassword {
		accounts = masked(accounts)
	}

	switch format {
	case FormatJSON:
		return printJSON(w, accounts)
	case FormatYAML:
		return printYAML(w, accounts)
	case FormatTable:
		return printTable(w, accounts)
	case FormatCSV:
		return printCSV(w, accounts)
	case FormatSimple, "":
		return printSimple(w, accounts)
	}
	return fmt.Errorf("неизвестный формат вывода: %s", format)
}

func masked(accounts []account.Account) []account.Account {
	out := make([]account.Account, 0, len(accounts))
	for _, a := range accounts {
		a = a.Clone()
		if a.Data.Password != nil {
			a.Data.Password = account.StringPtr(maskPassword(a.Data.Password, false))
		}
		out = append(out, a)
	}
	return out
}

func printSimple(w io.Writer, accounts []account.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "Учетные записи не найдены")
		return err
	}

	fmt.Fprintf(w, "Найдено учетных записей: %d\n\n", len(accounts))
	for i, a := range accounts {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, a.Data.RecordType.DisplayName(), a.Data.Login)
		fmt.Fprintf(w, "   ID: %d | Пароль: %s | Метки: %s\n\n",
			a.ID,
			maskPassword(a.Data.Password, true),
			orDash(account.FormatTags(a.Data.Tags)),
		)
	}
	return nil
}

func printTable(w io.Writer, accounts []account.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "Учетные записи не найдены")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tЛогин\tТип\tПароль\tМетки\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			a.ID,
			truncate(a.Data.Login, 30),
			a.Data.RecordType.DisplayName(),
			maskPassword(a.Data.Password, true),
			truncate(orDash(account.FormatTags(a.Data.Tags)), 40),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nВсего учетных записей: %d\n", len(accounts))
	return err
}

func printJSON(w io.Writer, accounts []account.Account) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(accounts)
}

func printYAML(w io.Writer, accounts []account.Account) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(accounts); err != nil {
		return err
	}
	return encoder.Close()
}

func printCSV(w io.Writer, accounts []account.Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "login", "password", "recordType", "tags"}); err != nil {
		return err
	}
	for _, a := range accounts {
		record := []string{
			strconv.Itoa(a.ID),
			a.Data.Login,
			a.Data.PasswordValue(),
			a.Data.RecordType.String(),
			account.FormatTags(a.Data.Tags),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
