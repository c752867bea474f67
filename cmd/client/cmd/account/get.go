package account

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"accountkeeper/internal/domain/account"
)

var (
	getFormat       string
	getShowPassword bool
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть учетную запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		acc, err := app.GetAccount(cmd.Context(), id)
		if err != nil {
			return err
		}

		if getFormat == FormatSimple {
			return printAccountHuman(cmd.OutOrStdout(), acc, getShowPassword)
		}
		return printAccounts(cmd.OutOrStdout(), getFormat, []account.Account{acc}, getShowPassword)
	},
}

func printAccountHuman(w io.Writer, acc account.Account, showPassword bool) error {
	fmt.Fprintf(w, "ID:      %d\n", acc.ID)
	fmt.Fprintf(w, "Логин:   %s\n", acc.Data.Login)
	fmt.Fprintf(w, "Тип:     %s\n", acc.Data.RecordType.DisplayName())
	fmt.Fprintf(w, "Пароль:  %s\n", maskPassword(acc.Data.Password, showPassword))
	_, err := fmt.Fprintf(w, "Метки:   %s\n", orDash(account.FormatTags(acc.Data.Tags)))
	return err
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", FormatSimple, "формат вывода (simple, json, yaml)")
	GetCmd.Flags().BoolVar(&getShowPassword, "show-password", false, "показать пароль")
}
