package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sigbox/internal/crypto"
	"sigbox/internal/util/memzero"
)

const (
	// keyFormatVersion is the current version of the on-disk key file format.
	keyFormatVersion = 1

	// PublicExt and PrivateExt name the two halves of a stored key pair.
	PublicExt  = ".pub"
	PrivateExt = ".key"

	kindPublic  = "public"
	kindPrivate = "private"
)

// Errors returned by KeyFileStore.
var (
	ErrPassphraseRequired = errors.New("key file is sealed; passphrase required")
	ErrUnsupportedVersion = errors.New("unsupported key file version")
	ErrWrongKind          = errors.New("key file holds the wrong kind of key")
	ErrExists             = errors.New("key file already exists")
	ErrInvalidName        = errors.New("invalid key name")
)

// KeyPair is a raw key pair tagged with its algorithm.
type KeyPair struct {
	Algorithm crypto.Algorithm
	Public    []byte
	Private   []byte
}

// keyFile is the on-disk JSON structure of one half of a key pair.
type keyFile struct {
	V      int              `json:"v"`
	Algo   crypto.Algorithm `json:"algo"`
	Kind   string           `json:"kind"`
	Key    []byte           `json:"key,omitempty"`
	Sealed *sealedKey       `json:"sealed,omitempty"`
}

// KeyFileStore reads and writes key pairs under a directory.
type KeyFileStore struct {
	dir  string
	logN int
	mu   sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir. scryptLogN sets the
// cost for sealing private keys; zero selects DefaultScryptLogN.
func NewKeyFileStore(dir string, scryptLogN int) *KeyFileStore {
	if scryptLogN == 0 {
		scryptLogN = DefaultScryptLogN
	}
	return &KeyFileStore{dir: dir, logN: scryptLogN}
}

// Dir returns the store directory.
func (s *KeyFileStore) Dir() string { return s.dir }

// Save writes kp as <name>.pub and <name>.key. The private half is sealed
// when passphrase is non-empty. Existing files are never overwritten, and a
// failed Save leaves neither file behind.
func (s *KeyFileStore) Save(name string, kp KeyPair, passphrase string) (pubPath, privPath string, err error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pubPath = filepath.Join(s.dir, name+PublicExt)
	privPath = filepath.Join(s.dir, name+PrivateExt)

	priv := keyFile{V: keyFormatVersion, Algo: kp.Algorithm, Kind: kindPrivate}
	if passphrase == "" {
		priv.Key = kp.Private
	} else {
		priv.Sealed, err = seal(passphrase, kp.Private, additionalData(kp.Algorithm), s.logN)
		if err != nil {
			return "", "", err
		}
	}
	if err := writeJSON(privPath, priv, 0o600); err != nil {
		return "", "", existsErr(privPath, err)
	}

	pub := keyFile{V: keyFormatVersion, Algo: kp.Algorithm, Kind: kindPublic, Key: kp.Public}
	if err := writeJSON(pubPath, pub, 0o644); err != nil {
		_ = os.Remove(privPath)
		return "", "", existsErr(pubPath, err)
	}
	return pubPath, privPath, nil
}

func existsErr(path string, err error) error {
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return err
}

// LoadPublic reads a public key. ref is a key name in the store directory or
// a path to a .pub file.
func (s *KeyFileStore) LoadPublic(ref string) (crypto.Algorithm, []byte, error) {
	kf, err := s.load(ref, PublicExt, kindPublic)
	if err != nil {
		return "", nil, err
	}
	return kf.Algo, kf.Key, nil
}

// LoadPrivate reads a private key, unsealing it with passphrase if needed.
// ref is a key name in the store directory or a path to a .key file.
func (s *KeyFileStore) LoadPrivate(ref, passphrase string) (crypto.Algorithm, []byte, error) {
	kf, err := s.load(ref, PrivateExt, kindPrivate)
	if err != nil {
		return "", nil, err
	}
	if kf.Sealed == nil {
		return kf.Algo, kf.Key, nil
	}
	if passphrase == "" {
		return "", nil, ErrPassphraseRequired
	}
	raw, err := kf.Sealed.open(passphrase, additionalData(kf.Algo))
	if err != nil {
		return "", nil, err
	}
	return kf.Algo, raw, nil
}

func (s *KeyFileStore) load(ref, ext, kind string) (keyFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolve(ref, ext)
	var kf keyFile
	if err := readJSON(path, &kf); err != nil {
		return keyFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if kf.V > keyFormatVersion {
		return keyFile{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, kf.V)
	}
	if kf.Kind != kind {
		memzero.Zero(kf.Key)
		return keyFile{}, fmt.Errorf("%w: %s is %q, want %q", ErrWrongKind, path, kf.Kind, kind)
	}
	if _, err := crypto.ParseAlgorithm(string(kf.Algo)); err != nil {
		return keyFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return kf, nil
}

// resolve maps a bare key name to a file in the store directory; anything
// that looks like a path is used as-is.
func (s *KeyFileStore) resolve(ref, ext string) string {
	if strings.ContainsAny(ref, `/\`) || filepath.Ext(ref) == ext {
		return ref
	}
	return filepath.Join(s.dir, ref+ext)
}

func additionalData(algo crypto.Algorithm) []byte {
	return []byte("sigbox-key|" + string(algo))
}
