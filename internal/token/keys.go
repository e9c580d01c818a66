package token

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// LoadKeyPair reads PEM-encoded RSA keys from the given paths. When either
// file is missing and ephemeralOK is set, a throwaway pair is generated so
// development setups run without provisioning keys; tokens signed with it do
// not survive a restart.
func LoadKeyPair(privPath, pubPath string, ephemeralOK bool) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privPEM, privErr := os.ReadFile(privPath)
	pubPEM, pubErr := os.ReadFile(pubPath)

	if privErr != nil || pubErr != nil {
		if !ephemeralOK {
			return nil, nil, fmt.Errorf("reading key pair: %w", firstErr(privErr, pubErr))
		}
		slog.Warn("key files not found, generating ephemeral RSA pair",
			"private_key_path", privPath, "public_key_path", pubPath)
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, nil, fmt.Errorf("generating ephemeral key: %w", err)
		}
		return priv, &priv.PublicKey, nil
	}

	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing private key: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing public key: %w", err)
	}

	return priv, pub, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
