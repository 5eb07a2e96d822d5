package utils

import "github.com/matthewhartstonge/argon2"

// passwordConfig is argon2id with the library defaults. Hashes carry their
// own parameters, so tuning this later never invalidates stored passwords.
var passwordConfig = argon2.DefaultConfig()

func HashPassword(password string) (string, error) {
	encoded, err := passwordConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the stored encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
