package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigbox/cmd/sigbox/commands"
	"sigbox/internal/crypto"
	"sigbox/internal/store"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("SIGBOX_SCRYPT_LOGN", "10")
	t.Setenv("SIGBOX_ENCODING", "")
	t.Setenv("SIGBOX_LOG_LEVEL", "")
	home := t.TempDir()
	t.Setenv("SIGBOX_HOME", home)
	return home
}

func TestSignVerify(t *testing.T) {
	home := setup(t)

	out, err := run(t, home, "", "keygen", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Fingerprint: ")

	sig, err := run(t, home, "hello", "sign", "--key", "alice")
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	assert.Len(t, sig, 128)

	out, err = run(t, home, "hello", "verify", "--pub", "alice", "--sig", sig)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	_, err = run(t, home, "hellp", "verify", "--pub", "alice", "--sig", sig)
	assert.ErrorIs(t, err, crypto.ErrVerification)
}

func TestSignVerify_Base64AndFiles(t *testing.T) {
	home := setup(t)
	_, err := run(t, home, "", "keygen", "alice")
	require.NoError(t, err)

	msgPath := filepath.Join(home, "msg.txt")
	require.NoError(t, os.WriteFile(msgPath, []byte("file message"), 0o600))

	sig, err := run(t, home, "", "--encoding", "base64", "sign", "--key", "alice", "--in", msgPath)
	require.NoError(t, err)

	sigPath := filepath.Join(home, "msg.sig")
	require.NoError(t, os.WriteFile(sigPath, []byte(sig), 0o600))

	out, err := run(t, home, "", "--encoding", "base64", "verify",
		"--pub", filepath.Join(home, "alice.pub"), "--sig-file", sigPath, "--in", msgPath)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
}

func TestSign_SealedKey(t *testing.T) {
	home := setup(t)
	_, err := run(t, home, "", "-p", "secret", "keygen", "alice")
	require.NoError(t, err)

	_, err = run(t, home, "m", "sign", "--key", "alice")
	assert.ErrorIs(t, err, store.ErrPassphraseRequired)

	_, err = run(t, home, "m", "-p", "wrong", "sign", "--key", "alice")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, err = run(t, home, "m", "-p", "secret", "sign", "--key", "alice")
	assert.NoError(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	home := setup(t)
	for _, name := range []string{"alice", "bob", "eve"} {
		_, err := run(t, home, "", "keygen", name, "--algo", "curve25519xsalsa20poly1305")
		require.NoError(t, err)
	}

	ct, err := run(t, home, "attack at dawn", "encrypt", "--key", "alice", "--peer", "bob")
	require.NoError(t, err)

	pt, err := run(t, home, ct, "decrypt", "--key", "bob", "--peer", "alice")
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", pt)

	_, err = run(t, home, ct, "decrypt", "--key", "eve", "--peer", "alice")
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestEncryptDecrypt_RawFiles(t *testing.T) {
	home := setup(t)
	for _, name := range []string{"alice", "bob"} {
		_, err := run(t, home, "", "keygen", name, "--algo", "curve25519xsalsa20poly1305")
		require.NoError(t, err)
	}
	ctPath := filepath.Join(home, "msg.box")
	ptPath := filepath.Join(home, "msg.out")

	_, err := run(t, home, "binary\x00payload", "--encoding", "raw",
		"encrypt", "--key", "alice", "--peer", "bob", "--out", ctPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(ctPath)
	require.NoError(t, err)
	assert.Len(t, raw, len("binary\x00payload")+crypto.Overhead)

	_, err = run(t, home, "", "--encoding", "raw",
		"decrypt", "--key", "bob", "--peer", "alice", "--in", ctPath, "--out", ptPath)
	require.NoError(t, err)

	got, err := os.ReadFile(ptPath)
	require.NoError(t, err)
	assert.Equal(t, "binary\x00payload", string(got))
}

func TestWrongAlgorithm(t *testing.T) {
	home := setup(t)
	_, err := run(t, home, "", "keygen", "signer")
	require.NoError(t, err)
	_, err = run(t, home, "", "keygen", "boxer", "--algo", "curve25519xsalsa20poly1305")
	require.NoError(t, err)

	_, err = run(t, home, "m", "sign", "--key", "boxer")
	assert.ErrorContains(t, err, "want ed25519")

	_, err = run(t, home, "m", "encrypt", "--key", "signer", "--peer", "boxer")
	assert.ErrorContains(t, err, "want curve25519xsalsa20poly1305")
}

func TestFingerprint(t *testing.T) {
	home := setup(t)
	out, err := run(t, home, "", "keygen", "alice")
	require.NoError(t, err)
	fp := strings.TrimSpace(out[strings.Index(out, "Fingerprint: ")+len("Fingerprint: "):])

	out, err = run(t, home, "", "fingerprint", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Fingerprint: "+fp+" (ed25519)\n", out)
}

func TestInvalidInvocations(t *testing.T) {
	home := setup(t)

	_, err := run(t, home, "", "keygen", "x", "--algo", "rsa")
	assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)

	_, err = run(t, home, "", "--encoding", "pem", "fingerprint", "x")
	assert.ErrorContains(t, err, "validation of config failed")

	_, err = run(t, home, "", "keygen", "alice")
	require.NoError(t, err)
	_, err = run(t, home, "m", "verify", "--pub", "alice")
	assert.ErrorContains(t, err, "--sig")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	home := setup(t)
	t.Setenv("SIGBOX_ENCODING", "pem")
	t.Setenv("SIGBOX_LOG_LEVEL", "loud")

	_, err := run(t, home, "", "keygen", "alice")
	assert.ErrorContains(t, err, "validation of config failed")

	_, err = run(t, home, "", "--encoding", "base64", "--log-level", "warn", "keygen", "alice")
	require.NoError(t, err)

	sig, err := run(t, home, "hello", "--encoding", "base64", "--log-level", "warn", "sign", "--key", "alice")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(sig), 88)
}
