package response

type LoginResponse struct {
	Operator    string `json:"operator"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
