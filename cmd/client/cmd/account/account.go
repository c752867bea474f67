package account

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"accountkeeper/internal/app/client"
	"accountkeeper/internal/domain/account"
)

// AccountCmd - родительская команда для всех операций с учетными записями
var AccountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"acc"},
	Short:   "Управление учетными записями",
	Long:    `Добавление, изменение, удаление и просмотр учетных записей.`,
}

var errNoApp = errors.New("приложение не инициализировано")

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return nil, errNoApp
	}
	return app, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный ID учетной записи: %s", s)
	}
	return id, nil
}

// dataFlags - общие флаги add, update и validate.
type dataFlags struct {
	login    string
	password string
	recType  string
	tags     string
	prompt   bool
}

func (f *dataFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.login, "login", "l", "", "логин")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "пароль (только для локальных записей)")
	cmd.Flags().StringVarP(&f.recType, "type", "t", "", "тип записи: ldap или local")
	cmd.Flags().StringVar(&f.tags, "tags", "", `метки через ";", например "web; db"`)
	cmd.Flags().BoolVar(&f.prompt, "ask-password", false, "запросить пароль в терминале")
}

// input собирает только явно заданные флаги.
func (f *dataFlags) input(cmd *cobra.Command) client.AccountInput {
	var in client.AccountInput
	flags := cmd.Flags()
	if flags.Changed("login") {
		in.Login = &f.login
	}
	if flags.Changed("password") {
		in.Password = &f.password
	}
	if flags.Changed("type") {
		in.Type = &f.recType
	}
	if flags.Changed("tags") {
		in.Tags = &f.tags
	}
	return in
}

// needsPrompt: пароль спрашиваем, если его явно попросили или если
// создается локальная запись без пароля и stdin - терминал.
func (f *dataFlags) needsPrompt(cmd *cobra.Command, creating bool) bool {
	if cmd.Flags().Changed("password") {
		return false
	}
	if f.prompt {
		return true
	}
	if !creating {
		return false
	}
	rt, err := account.ParseRecordType(f.recType)
	return err == nil && rt.RequiresPassword() && term.IsTerminal(int(os.Stdin.Fd()))
}

func readPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Пароль: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

func success(out io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(out, "✓ "+format+"\n", args...)
}

func maskPassword(p *string, show bool) string {
	switch {
	case p == nil:
		return "-"
	case show:
		return *p
	default:
		return strings.Repeat("*", 8)
	}
}
