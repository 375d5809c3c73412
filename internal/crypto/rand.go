package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// SessionKeySize is the size of generated cookie signing keys.
const SessionKeySize = 32

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// SessionKey returns the cookie signing key derived from secret, or a random
// one when secret is empty. Random keys do not survive restarts.
func SessionKey(secret string) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}

	key, err := RandomBytes(SessionKeySize)
	if err != nil {
		return nil, errors.Wrap(err, "could not generate session key")
	}

	return key, nil
}
