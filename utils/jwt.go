package utils

var (
	// JWTSecretKey signs access tokens. Set from config at startup,
	// directly by testutils in tests.
	JWTSecretKey string

	// JWTExpirationTime is the access token lifetime in seconds.
	JWTExpirationTime int
)
