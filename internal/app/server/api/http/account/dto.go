package account

import (
	"accountkeeper/internal/domain/account"
)

type listInput struct {
	RecordType string `query:"type" doc:"Фильтр по типу: LDAP или Локальная"`
	Tag        string `query:"tag" doc:"Фильтр по метке"`
	Login      string `query:"login" doc:"Подстрока логина"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Accounts []account.Account `json:"accounts"`
	Total    int               `json:"total"`
}

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID учетной записи"`
}

type accountOutput struct {
	Body account.Account
}

type request struct {
	Login      string             `json:"login,omitempty" doc:"Логин"`
	Password   *string            `json:"password,omitempty" nullable:"true" doc:"Пароль, null для LDAP"`
	RecordType account.RecordType `json:"recordType" doc:"Тип учетной записи"`
	Tags       []account.Tag      `json:"tags,omitempty" doc:"Метки"`
}

func (r request) toData() account.Data {
	return account.Data{
		Login:      r.Login,
		Password:   r.Password,
		RecordType: r.RecordType,
		Tags:       r.Tags,
	}
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID учетной записи"`
	Body request
}

type validateInput struct {
	ID   int `query:"id" doc:"ID изменяемой записи, 0 для новой"`
	Body request
}

type output struct {
	Body response
}

type response struct {
	ID     int    `json:"id,omitempty"`
	Status string `json:"status"`
}

type validateOutput struct {
	Body validateResponse
}

type validateResponse struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage"`
}
