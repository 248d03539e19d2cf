package dto

type AskRequest struct {
	Question string `json:"question" msgpack:"question"`
}

// AskResponse omits answer when the model produced no content
type AskResponse struct {
	Answer string `json:"answer,omitempty" msgpack:"answer,omitempty"`
}
