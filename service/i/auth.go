package i

// Authenticator exchanges client credentials for an access token.
type Authenticator interface {
	SignIn(clientID, clientSecret string) (string, error)
}
