// file: internals/features/users/auth/service/google_service.go
package service

import (
	"fmt"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

type GoogleProfile struct {
	Sub      string
	Email    string
	FullName string
}

// VerifyGoogleIDToken memvalidasi id_token dari Google Sign-In
// terhadap client ID kita, lalu mengembalikan profil minimal.
func VerifyGoogleIDToken(idToken, clientID string) (*GoogleProfile, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, fmt.Errorf("id_token tidak valid: %w", err)
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("gagal decode id_token: %w", err)
	}
	if claims.Sub == "" || claims.Email == "" {
		return nil, fmt.Errorf("id_token tidak memuat sub/email")
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	return &GoogleProfile{
		Sub:      claims.Sub,
		Email:    claims.Email,
		FullName: name,
	}, nil
}
