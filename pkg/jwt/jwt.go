package jwt

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"frota-backend/internal/models"
)

// JWTUtil signs and verifies session tokens with an RSA key pair. The
// private key may be absent on instances that only verify.
type JWTUtil struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	expiry     time.Duration
}

type Claims struct {
	Role           models.Role `json:"role"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	DepartmentID   *string     `json:"departmentId"`
	DepartmentName *string     `json:"departmentName"`
	DepartmentCode *string     `json:"departmentCode"`
	jwt.RegisteredClaims
}

// New parses a base64-encoded PEM key pair. privateKeyB64 may be empty.
func New(privateKeyB64, publicKeyB64 string, expiry time.Duration) (*JWTUtil, error) {
	if publicKeyB64 == "" {
		return nil, errors.New("JWT public key is not configured")
	}

	pubPEM, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	util := &JWTUtil{publicKey: publicKey, expiry: expiry}

	if privateKeyB64 != "" {
		privPEM, err := base64.StdEncoding.DecodeString(privateKeyB64)
		if err != nil {
			return nil, fmt.Errorf("decode private key: %w", err)
		}
		privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		util.privateKey = privateKey
	}

	return util, nil
}

// NewFromKeys wires an already-parsed key pair, used by tests.
func NewFromKeys(privateKey *rsa.PrivateKey, expiry time.Duration) *JWTUtil {
	return &JWTUtil{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		expiry:     expiry,
	}
}

func (j *JWTUtil) GenerateToken(user *models.User) (string, error) {
	if j.privateKey == nil {
		return "", errors.New("JWT private key is not configured")
	}

	claims := &Claims{
		Role:  user.Role,
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "frota-backend",
		},
	}
	if user.DepartmentID != nil {
		id := user.DepartmentID.String()
		claims.DepartmentID = &id
	}
	if user.Department != nil {
		claims.DepartmentName = &user.Department.Name
		claims.DepartmentCode = &user.Department.Code
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}

func (j *JWTUtil) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
