package dto

type GenerateTokenRequest struct {
	Name string `json:"name" msgpack:"name"`
	Room string `json:"room" msgpack:"room"`
	Role string `json:"role" msgpack:"role"`
}

type GenerateTokenResponse struct {
	Token string `json:"token" msgpack:"token"`
	URL   string `json:"url" msgpack:"url"`
}
