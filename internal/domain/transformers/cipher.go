package transformers

import (
	"encoding/base64"
	"fmt"
)

// Magic holds the constants mixed into every encrypted byte. The injected
// decoder carries the same values.
var Magic = [3]int64{0xDEADBEEF, 0xCAFEBABE, 0xFACEFEED}

// magicByte returns byte i%4, counting from the low byte, of Magic[i%3].
func magicByte(i int) byte {
	return byte(uint64(Magic[i%len(Magic)]) >> (uint(i%4) * 8))
}

// xorChain applies the keystream to data. It is its own inverse.
func xorChain(data []byte, key int32) []byte {
	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b ^ byte(key) ^ magicByte(i) ^ byte(i&0xFF)
	}

	return out
}

// Encrypt returns the base64 form of the UTF-8 bytes of plaintext run
// through the keystream for key.
func Encrypt(plaintext string, key int32) string {
	return base64.StdEncoding.EncodeToString(xorChain([]byte(plaintext), key))
}

// Decrypt reverses Encrypt. It mirrors what the injected decoder does at run time.
func Decrypt(ciphertext string, key int32) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("invalid ciphertext: %w", err)
	}

	return string(xorChain(data, key)), nil
}
