package account

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"accountkeeper/internal/domain/account"
)

var (
	validateFlags dataFlags
	validateID    int
)

var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Проверить данные без сохранения",
	Long: `Проверяет обязательные поля и уникальность пары логин + тип так же,
как при добавлении (или при изменении записи --id).`,
	Example: `  accountkeeper account validate --login admin --type local --password secret
  accountkeeper account validate --id 3 --type ldap`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		in := validateFlags.input(cmd)
		if validateFlags.needsPrompt(cmd, false) {
			password, err := readPassword(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in.Password = &password
		}

		err = app.ValidateAccount(cmd.Context(), validateID, in)
		if err != nil && !account.IsValidationError(err) {
			return err
		}
		if err != nil {
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ %s\n", account.Message(err))
			return fmt.Errorf("данные не прошли проверку")
		}

		success(cmd.OutOrStdout(), "Данные корректны")
		return nil
	},
}

func init() {
	validateFlags.bind(ValidateCmd)
	ValidateCmd.Flags().IntVar(&validateID, "id", account.NoID, "ID изменяемой записи")
}
