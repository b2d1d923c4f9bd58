package v1

// IdentityClient talks to the upstream identity provider. The timeclock never
// authenticates users itself; it mirrors the provider's user records and
// verifies the tokens the provider issues.
type IdentityClient struct {
	Transport *Transport
	Users     *UsersEndpoint
}

func NewIdentityClient(baseURL string, token string) *IdentityClient {
	t := NewTransport(baseURL, token)
	return &IdentityClient{
		Transport: t,
		Users:     &UsersEndpoint{transport: t},
	}
}
