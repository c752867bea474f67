package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status   string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Accounts int    `json:"accounts" example:"3" doc:"Количество загруженных учетных записей"`
}
