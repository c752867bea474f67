package account

import (
	"github.com/spf13/cobra"
)

var updateFlags dataFlags

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Изменить учетную запись",
	Long: `Изменение учетной записи по ID.

Меняются только переданные флаги, остальные поля остаются прежними.
При смене типа на ldap пароль удаляется.`,
	Example: `  accountkeeper account update 3 --tags "web"
  accountkeeper account update 3 --ask-password`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		in := updateFlags.input(cmd)
		if updateFlags.needsPrompt(cmd, false) {
			password, err := readPassword(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in.Password = &password
		}

		updated, err := app.UpdateAccount(cmd.Context(), id, in)
		if err != nil {
			return err
		}

		success(cmd.OutOrStdout(), "Учетная запись %d обновлена (%s, %s)", updated.ID, updated.Data.Login, updated.Data.RecordType)
		return nil
	},
}

func init() {
	updateFlags.bind(UpdateCmd)
}
