package env

import "crypto/subtle"

type PingEnvironment struct {
	Username string `validate:"required,min=4"`
	Password string `validate:"required,min=8"`
}

func (e PingEnvironment) HasInvalidCreds(username, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(e.Username), []byte(username)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(e.Password), []byte(password)) == 1

	return !userOk || !passOk
}
