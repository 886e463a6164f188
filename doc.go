// Package slip39 implements the SLIP-0039 shared-secret scheme: it splits
// a master secret into mnemonic word lists organised into groups, such
// that any authorised subset of groups and members reconstructs the
// secret while any smaller subset reveals nothing.
//
// The package wires together, leaves-first, GF(2^8) field arithmetic
// (internal/gf256), the wordlist codec (internal/wordlist), the RS1024
// checksum (internal/rs1024), the bit-packed share record (internal/
// record), the Shamir engine (internal/shamir), and the passphrase-keyed
// Feistel cipher (internal/feistel). GenerateMnemonics and
// CombineMnemonics are the two entry points; DecodeMnemonic inspects a
// single share's metadata without attempting any reconstruction.
//
// CombineMnemonicsToMasterKey and MasterKeyFromBIP39Mnemonic bridge a
// recovered secret into a BIP-32 extended key via the seedsource
// package, for callers that want a wallet key tree rather than raw
// secret bytes.
package slip39
