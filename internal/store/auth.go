package store

// AuthState is the auth slice. Token is opaque.
type AuthState struct {
	IsAuthenticated bool    `json:"is_authenticated"`
	Token           *string `json:"-"`
}

// ReduceAuth applies an auth intent.
func ReduceAuth(a AuthState, in Intent) AuthState {
	switch in := in.(type) {
	case LoginSuccess:
		tok := in.Token
		a.IsAuthenticated = true
		a.Token = &tok
	case Logout:
		a.IsAuthenticated = false
		a.Token = nil
	}
	return a
}

// HasToken reports whether the slice is authenticated with exactly token.
func (a AuthState) HasToken(token string) bool {
	return a.IsAuthenticated && a.Token != nil && *a.Token == token
}
