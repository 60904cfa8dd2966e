package responses

type Token struct {
	Token string `json:"token"`
}
