package argon

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	MemoryKey      = "security.argon2.memory"
	IterationKey   = "security.argon2.iterations"
	ParallelismKey = "security.argon2.parallelism"
	SaltLengthKey  = "security.argon2.salt_length"
	KeyLengthKey   = "security.argon2.key_length"

	DisableRehashKey = "security.disable_rehash_on_login"

	DefaultMemory      = 64 * 1024
	DefaultIterations  = 3
	DefaultParallelism = 2
	DefaultSaltLength  = 16
	DefaultKeyLength   = 32
)

var (
	ErrInvalidHash    = errors.New("argon2: Verify: invalid credential hash")
	ErrInvalidVersion = errors.New("argon2: Verify: incorrect version of argon2")
	ErrMismatch       = errors.New("argon2: Verify: credential does not match")
)

// params describes one encoded argon2id hash, or the parameters new hashes should be made with.
type params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

func configuredParams() (params, error) {
	p := params{
		memory:      viper.GetUint32(MemoryKey),
		iterations:  viper.GetUint32(IterationKey),
		parallelism: DefaultParallelism,
		saltLength:  viper.GetUint32(SaltLengthKey),
		keyLength:   viper.GetUint32(KeyLengthKey),
	}

	if rawParallelism := viper.GetInt(ParallelismKey); rawParallelism != 0 {
		parallelism, err := safeCastUint8(rawParallelism)
		if err != nil {
			return params{}, fmt.Errorf("argon2: invalid parallelism configuration: %w", err)
		}
		p.parallelism = parallelism
	}

	// unset keys fall back to the defaults so they never have to be written to the config file
	if p.memory == 0 {
		p.memory = DefaultMemory
	}
	if p.iterations == 0 {
		p.iterations = DefaultIterations
	}
	if p.saltLength == 0 {
		p.saltLength = DefaultSaltLength
	}
	if p.keyLength == 0 {
		p.keyLength = DefaultKeyLength
	}

	return p, nil
}

// IsBcrypt reports whether the stored hash came from the previous hosted backend, which used bcrypt.
func IsBcrypt(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2")
}

// Hash derives an argon2id hash of secret with a freshly generated salt, so hashing the same secret
// twice never yields the same string.
func Hash(secret string) (string, error) {
	p, err := configuredParams()
	if err != nil {
		return "", fmt.Errorf("argon2: Hash: %w", err)
	}

	log.Trace().
		Uint32("iteration_count", p.iterations).
		Uint32("memory_count", p.memory).
		Uint8("parallelism_count", p.parallelism).
		Uint32("key_length", p.keyLength).
		Uint32("salt_length", p.saltLength).
		Msg("hashing credential with argon2")

	salt := securecookie.GenerateRandomKey(int(p.saltLength))
	if salt == nil {
		log.Error().Uint32("salt_length_bytes", p.saltLength).Msg("could not generate random salt")
		return "", errors.New("argon2: Hash: could not generate salt")
	}

	key := argon2.IDKey([]byte(secret), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.iterations,
		p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify checks secret against an encoded hash. Both argon2id hashes and imported bcrypt hashes are
// accepted. ErrMismatch is returned when the hash is valid but the secret is wrong.
func Verify(secret, encodedHash string) error {
	if IsBcrypt(encodedHash) {
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(secret))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		if err != nil {
			return ErrInvalidHash
		}
		return nil
	}

	p, salt, key, err := decode(encodedHash)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(secret), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrMismatch
	}

	return nil
}

// NeedsRehash is true for bcrypt hashes and for argon2id hashes made with parameters other than the
// configured ones.
func NeedsRehash(encodedHash string) bool {
	if viper.GetBool(DisableRehashKey) {
		return false
	}

	if !strings.HasPrefix(encodedHash, "$argon2id$") {
		return true
	}

	current, _, _, err := decode(encodedHash)
	if err != nil {
		log.Warn().Err(err).Msg("invalid argon2 hash")
		return true
	}

	wanted, err := configuredParams()
	if err != nil {
		log.Warn().Err(err).Msg("invalid argon configuration")
		return false
	}

	return current != wanted
}

func decode(encodedHash string) (params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params{}, nil, nil, ErrInvalidHash
	}

	if version != argon2.Version {
		log.Warn().Int("expected_version", argon2.Version).Int("hash_version", version).Msg("invalid argon2 version")
		return params{}, nil, nil, ErrInvalidVersion
	}

	var p params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return params{}, nil, nil, ErrInvalidHash
	}
	p.saltLength, err = safeCastUint32(len(salt))
	if err != nil {
		return params{}, nil, nil, fmt.Errorf("argon2: decode: invalid salt length: %w", err)
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return params{}, nil, nil, ErrInvalidHash
	}
	p.keyLength, err = safeCastUint32(len(key))
	if err != nil {
		return params{}, nil, nil, fmt.Errorf("argon2: decode: invalid key length: %w", err)
	}

	return p, salt, key, nil
}
