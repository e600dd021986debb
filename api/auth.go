package api

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type SupabaseJWT struct {
	Audience    string  `json:"aud"`
	Email       *string `json:"email"`
	ExpiresAt   int64   `json:"exp"`
	IssuedAt    int64   `json:"iat"`
	IsAnonymous bool    `json:"is_anonymous"`
	Issuer      string  `json:"iss"`
	Role        string  `json:"role"`
	SessionID   string  `json:"session_id"`
	Subject     string  `json:"sub"`
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

// Minimal subset of JWK fields needed for ES256 verification.
type jwkKey struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	X   string `json:"x"`
	Y   string `json:"y"`
	Alg string `json:"alg"`
}

// supabaseJwtVerifier validates tokens issued by the hosted ledger's auth
// layer. Legacy tokens are HS256 with a shared secret; newer projects sign
// ES256 and publish keys at the issuer's JWKS endpoint. Fetched keys are
// cached on the verifier, which lives as long as the router.
type supabaseJwtVerifier struct {
	secret string

	mu sync.RWMutex
	// cache key: jwksURL + "|" + kid
	keyCache map[string]*ecdsa.PublicKey
}

func newSupabaseJwtVerifier(secret string) *supabaseJwtVerifier {
	return &supabaseJwtVerifier{
		secret:   secret,
		keyCache: map[string]*ecdsa.PublicKey{},
	}
}

func (m ApiHandler) authMiddleware() gin.HandlerFunc {
	verifier := newSupabaseJwtVerifier(m.JwtSecret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" || token == authHeader {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
			return
		}

		claims, err := verifier.verify(token)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unauthorized: %w", err), c, 401)
			return
		}

		c.Set("userID", claims.Subject)
		c.Next()
	}
}

func (v *supabaseJwtVerifier) verify(jwtStr string) (*SupabaseJWT, error) {
	// First attempt: legacy HS256 with the shared secret.
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	})

	// If the token isn't HS*, fall back to ES256 via the issuer's JWKS.
	if err != nil {
		header, unverifiedClaims, decodeErr := decodeJwtUnverified(jwtStr)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		alg, _ := header["alg"].(string)
		if alg != "ES256" {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		kid, _ := header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("failed to parse token: missing kid")
		}
		if unverifiedClaims.Issuer == "" {
			return nil, fmt.Errorf("failed to parse token: missing iss")
		}

		jwksURL := strings.TrimRight(unverifiedClaims.Issuer, "/") + "/.well-known/jwks.json"
		esToken, esErr := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.getES256PublicKey(jwksURL, kid)
		})
		if esErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", esErr)
		}
		token = esToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling claims: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

func (v *supabaseJwtVerifier) getES256PublicKey(jwksURL string, kid string) (*ecdsa.PublicKey, error) {
	cacheKey := jwksURL + "|" + kid
	v.mu.RLock()
	if k, ok := v.keyCache[cacheKey]; ok {
		v.mu.RUnlock()
		return k, nil
	}
	v.mu.RUnlock()

	resp, err := http.Get(jwksURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch JWKS: http %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	for _, k := range jwks.Keys {
		if k.Kid != kid {
			continue
		}
		if k.Kty != "EC" || k.Crv != "P-256" {
			return nil, fmt.Errorf("unsupported JWK key type/curve: kty=%s crv=%s", k.Kty, k.Crv)
		}
		x, err := base64URLDecodeToBigInt(k.X)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK x: %w", err)
		}
		y, err := base64URLDecodeToBigInt(k.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK y: %w", err)
		}
		pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

		v.mu.Lock()
		v.keyCache[cacheKey] = pub
		v.mu.Unlock()

		return pub, nil
	}

	return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
}

func decodeJwtUnverified(jwtStr string) (map[string]any, *SupabaseJWT, error) {
	parts := strings.Split(jwtStr, ".")
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("invalid JWT format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT header: %w", err)
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT header: %w", err)
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT claims: %w", err)
	}
	var parsedJWT SupabaseJWT
	if err := json.Unmarshal(claimsBytes, &parsedJWT); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT claims: %w", err)
	}

	return header, &parsedJWT, nil
}

func base64URLDecodeToBigInt(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
