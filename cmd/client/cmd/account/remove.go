package account

import (
	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:     "remove [id...]",
	Aliases: []string{"rm", "delete"},
	Short:   "Удалить учетные записи",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		for _, arg := range args {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			if err := app.RemoveAccount(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Учетная запись %d удалена", id)
		}
		return nil
	},
}
