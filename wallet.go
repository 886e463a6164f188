package slip39

import (
	"github.com/tyler-smith/go-bip32"

	"github.com/mrz1836/slip39/internal/secure"
	"github.com/mrz1836/slip39/seedsource"
)

// CombineMnemonicsToMasterKey reconstructs the master secret exactly as
// CombineMnemonics does, then hands it to seedsource.MasterKeyFromSecret
// to derive a BIP-32 extended key — the downstream step a wallet built on
// this library actually takes after recovery. The recovered secret is
// zeroed as soon as the key has been derived from it.
func CombineMnemonicsToMasterKey(mnemonics []string, passphrase string) (*bip32.Key, error) {
	secret, err := CombineMnemonics(mnemonics, passphrase)
	if err != nil {
		return nil, err
	}
	secretBuf := secure.FromSlice(secret)
	secure.Zero(secret)
	defer secretBuf.Destroy()

	return seedsource.MasterKeyFromSecret(secretBuf.Bytes())
}

// MasterKeyFromBIP39Mnemonic is the non-SLIP-39 sibling entry point: it
// turns a BIP-39 mnemonic and optional passphrase directly into a BIP-32
// master key, for a caller that wants a single-phrase backup instead of a
// multi-share split.
func MasterKeyFromBIP39Mnemonic(mnemonic, passphrase string) (*bip32.Key, error) {
	seed, err := seedsource.SeedFromBIP39Mnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	seedBuf := secure.FromSlice(seed)
	secure.Zero(seed)
	defer seedBuf.Destroy()

	return seedsource.MasterKeyFromSecret(seedBuf.Bytes())
}
