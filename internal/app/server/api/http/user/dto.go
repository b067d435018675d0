package user

import (
	"usercrud/internal/domain/user"
)

type listOutput struct {
	Body []user.User
}

type idInput struct {
	ID string `path:"id" example:"1" doc:"ID записи"`
}

type createInput struct {
	Body user.Person
}

type updateInput struct {
	ID   string `path:"id" example:"1" doc:"ID записи"`
	Body user.Person
}

type output struct {
	Body user.User
}
