package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for SnookerHub.
// It carries the player identity needed to authorize profile and social-graph
// operations without a server-side session lookup.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These drive token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the unique identifier of the signed-in player.
	ID string `json:"id"`

	// Username is the player's handle at the time the token was issued.
	Username string `json:"username"`

	// Avatar is the player's avatar reference at the time the token was issued.
	Avatar string `json:"avatar,omitempty"`
}
