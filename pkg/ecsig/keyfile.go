package ecsig

import (
	"fmt"
	"os"
)

// LoadPublicKeyFile reads a SEC1 public key blob from the file at path and
// loads it into the handle.
func (k *Key) LoadPublicKeyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read public key file: %w", err)
	}
	return k.LoadPublicKey(data)
}

// LoadPrivateKeyFile reads a raw private key blob from the file at path and
// loads it into the handle. The read buffer is zeroized once the key has
// been parsed.
func (k *Key) LoadPrivateKeyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read private key file: %w", err)
	}
	err = k.LoadPrivateKey(data)
	ZeroizeBytes(data)
	return err
}
