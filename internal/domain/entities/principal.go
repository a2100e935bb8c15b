package entities

// Principal is the authenticated caller of a request.
type Principal struct {
	ClientID    int64  `json:"client_id"`
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
}
