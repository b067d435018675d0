package health

// Output - ответ проверки доступности
type Output struct {
	Status int `json:"-"`
	Body   Response
}

// Response - состояние сервиса и хранилища
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Storage string `json:"storage" example:"OK" doc:"Состояние хранилища записей"`
}
