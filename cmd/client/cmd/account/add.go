package account

import (
	"github.com/spf13/cobra"
)

var addFlags dataFlags

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить учетную запись",
	Long: `Добавление новой учетной записи.

Для типа local пароль обязателен: передайте --password или введите его
по запросу. Для типа ldap пароль не сохраняется.`,
	Example: `  accountkeeper account add --login admin --type local --tags "web; prod"
  accountkeeper account add -l ivanov -t ldap`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		in := addFlags.input(cmd)
		if addFlags.needsPrompt(cmd, true) {
			password, err := readPassword(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in.Password = &password
		}

		created, err := app.AddAccount(cmd.Context(), in)
		if err != nil {
			return err
		}

		success(cmd.OutOrStdout(), "Учетная запись '%s' добавлена, ID: %d", created.Data.Login, created.ID)
		return nil
	},
}

func init() {
	addFlags.bind(AddCmd)
}
