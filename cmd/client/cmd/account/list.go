package account

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"accountkeeper/internal/domain/account"
)

var (
	listType     string
	listTag      string
	listLogin    string
	listFormat   string
	showPassword bool
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Список учетных записей",
	Long: `Просмотр списка учетных записей в порядке добавления с фильтрами
по типу, метке и подстроке логина.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		filter := account.Filter{
			Tag:   listTag,
			Login: listLogin,
		}
		if listType != "" {
			rt, err := account.ParseRecordType(listType)
			if err != nil {
				return account.NewDomainError(account.ErrInvalidRecordType)
			}
			filter.RecordType = rt
		}

		accounts, err := app.ListAccounts(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("ошибка получения списка: %w", err)
		}

		return printAccounts(cmd.OutOrStdout(), listFormat, accounts, showPassword)
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "фильтр по типу (ldap, local)")
	ListCmd.Flags().StringVar(&listTag, "tag", "", "фильтр по метке")
	ListCmd.Flags().StringVar(&listLogin, "login", "", "фильтр по подстроке логина")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", FormatSimple,
		"формат вывода ("+strings.Join(Formats, ", ")+")")
	ListCmd.Flags().BoolVar(&showPassword, "show-password", false, "показывать пароли")
}
