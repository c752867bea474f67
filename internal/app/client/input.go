package client

import (
	"accountkeeper/internal/domain/account"
)

// AccountInput - поля, введенные пользователем. nil означает "не задано".
type AccountInput struct {
	Login    *string
	Password *string
	Type     *string
	Tags     *string
}

// apply накладывает заданные поля на base. Тип принимает ldap, local или
// сохраненное значение, метки - строку через ";".
func (in AccountInput) apply(base account.Data) (account.Data, error) {
	data := base.Clone()

	if in.Login != nil {
		data.Login = *in.Login
	}
	if in.Type != nil {
		rt, err := account.ParseRecordType(*in.Type)
		if err != nil {
			return account.Data{}, account.NewDomainError(account.ErrInvalidRecordType)
		}
		data.RecordType = rt
	}
	if in.Password != nil {
		data.Password = account.StringPtr(*in.Password)
	}
	if in.Tags != nil {
		data.Tags = account.ParseTags(*in.Tags)
	}

	return data.Normalize(), nil
}
