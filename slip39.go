package slip39

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/mrz1836/slip39/internal/entropy"
	"github.com/mrz1836/slip39/internal/feistel"
	"github.com/mrz1836/slip39/internal/record"
	"github.com/mrz1836/slip39/internal/secure"
	"github.com/mrz1836/slip39/internal/shamir"
)

// ShareInfo is the metadata carried by one share record, returned by
// DecodeMnemonic without attempting any reconstruction. ValueLength
// stands in for the share value itself: decoding inspects a share, it
// does not recover secret material.
type ShareInfo struct {
	Identifier        uint16
	Extendable        bool
	IterationExponent uint8
	GroupIndex        uint8
	GroupThreshold    uint8
	GroupCount        uint8
	MemberIndex       uint8
	MemberThreshold   uint8
	ValueLength       int
}

// DecodeMnemonic parses one mnemonic's words into its share metadata. It
// performs no combination and recovers no secret.
func DecodeMnemonic(words []string) (ShareInfo, error) {
	rec, err := record.Decode(words)
	if err != nil {
		return ShareInfo{}, err
	}
	return ShareInfo{
		Identifier:        rec.Identifier,
		Extendable:        rec.Extendable,
		IterationExponent: rec.IterationExponent,
		GroupIndex:        rec.GroupIndex,
		GroupThreshold:    rec.GroupThreshold,
		GroupCount:        rec.GroupCount,
		MemberIndex:       rec.MemberIndex,
		MemberThreshold:   rec.MemberThreshold,
		ValueLength:       len(rec.Value),
	}, nil
}

// GenerateMnemonics splits masterSecret into a two-level SLIP-39 scheme:
// groupThreshold of len(groups) groups are required, and within group i,
// groups[i].Threshold of groups[i].Count members are required. It
// returns one mnemonic string per member, organised as result[i][j] for
// group i, member j.
func GenerateMnemonics(groupThreshold int, groups []GroupSpec, masterSecret []byte, passphrase string, opts ...Option) ([][]string, error) {
	if err := validateGroupSpecs(groupThreshold, groups); err != nil {
		return nil, err
	}
	if len(masterSecret) < 16 {
		return nil, invalidInput("master secret must be at least 16 bytes")
	}
	if len(masterSecret)%2 != 0 {
		return nil, invalidInput("master secret length must be even")
	}
	if err := feistel.ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}

	o := resolveOptions(opts)
	if o.IterationExponent < 0 || o.IterationExponent > 15 {
		return nil, invalidInput("iteration exponent must be 0..15")
	}

	identifier, err := entropy.Identifier(o.Source)
	if err != nil {
		return nil, err
	}
	o.Logger.DebugAttrs("generating mnemonics",
		slog.Int("group_threshold", groupThreshold),
		slog.Int("group_count", len(groups)),
		slog.Int("iteration_exponent", o.IterationExponent),
		slog.Bool("extendable", o.Extendable),
	)

	params := feistel.Params{
		Identifier:        identifier,
		IterationExponent: o.IterationExponent,
		Extendable:        o.Extendable,
	}
	ems, err := feistel.Encrypt(masterSecret, passphrase, params)
	if err != nil {
		return nil, err
	}
	emsBuf := secure.FromSlice(ems)
	secure.Zero(ems)
	defer emsBuf.Destroy()

	outerShares, err := shamir.Split(o.Source, emsBuf.Bytes(), groupThreshold, len(groups))
	if err != nil {
		return nil, err
	}

	result := make([][]string, len(groups))
	for i, g := range groups {
		innerShares, err := shamir.Split(o.Source, outerShares[i].Y, g.Threshold, g.Count)
		if err != nil {
			return nil, err
		}

		mnemonics := make([]string, len(innerShares))
		for j, s := range innerShares {
			rec := record.Record{
				Identifier:        identifier,
				Extendable:        o.Extendable,
				IterationExponent: uint8(o.IterationExponent),
				GroupIndex:        uint8(i),
				GroupThreshold:    uint8(groupThreshold),
				GroupCount:        uint8(len(groups)),
				MemberIndex:       s.X,
				MemberThreshold:   uint8(g.Threshold),
				Value:             s.Y,
			}
			words, err := rec.Encode()
			if err != nil {
				return nil, err
			}
			mnemonics[j] = strings.Join(words, " ")
		}
		result[i] = mnemonics
	}
	return result, nil
}

// CombineMnemonics reconstructs the master secret from a flat list of
// mnemonic strings spanning one or more groups. The shares need not come
// from the same group, and fewer than the required threshold of groups
// or members returns InsufficientShares; shares that are mutually
// inconsistent (different identifier, iteration exponent, extendable
// flag, or outer threshold) return InconsistentShares.
func CombineMnemonics(mnemonics []string, passphrase string) ([]byte, error) {
	if len(mnemonics) == 0 {
		return nil, invalidInput("at least one mnemonic is required")
	}

	records := make([]record.Record, 0, len(mnemonics))
	for _, m := range mnemonics {
		rec, err := record.Decode(strings.Fields(m))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	first := records[0]
	for _, r := range records[1:] {
		if r.Identifier != first.Identifier || r.Extendable != first.Extendable ||
			r.IterationExponent != first.IterationExponent ||
			r.GroupThreshold != first.GroupThreshold || r.GroupCount != first.GroupCount {
			return nil, inconsistentShares("shares do not belong to the same split")
		}
	}

	byGroup := make(map[uint8][]record.Record)
	for _, r := range records {
		byGroup[r.GroupIndex] = append(byGroup[r.GroupIndex], r)
	}

	groupShares := make([]shamir.Share, 0, len(byGroup))
	for gi, recs := range byGroup {
		seenMI := make(map[uint8]bool, len(recs))
		for _, r := range recs {
			if seenMI[r.MemberIndex] {
				return nil, inconsistentShares("duplicate member index within one group")
			}
			seenMI[r.MemberIndex] = true
			if r.MemberThreshold != recs[0].MemberThreshold {
				return nil, inconsistentShares("mismatched member threshold within one group")
			}
		}

		mt := int(recs[0].MemberThreshold)
		if mt == 1 && len(recs) > 1 {
			return nil, inconsistentShares("member threshold 1 but more than one member share presented")
		}
		if len(recs) < mt {
			return nil, insufficientShares("a present group has fewer member shares than its member threshold")
		}

		sort.Slice(recs, func(a, b int) bool { return recs[a].MemberIndex < recs[b].MemberIndex })
		chosen := recs[:mt]
		shares := make([]shamir.Share, mt)
		for k, r := range chosen {
			shares[k] = shamir.Share{X: r.MemberIndex, Y: r.Value}
		}

		y, err := shamir.Combine(shares)
		if err != nil {
			return nil, err
		}
		groupShares = append(groupShares, shamir.Share{X: gi, Y: y})
	}

	gt := int(first.GroupThreshold)
	if len(groupShares) < gt {
		return nil, insufficientShares("fewer than the required number of groups have enough members")
	}

	sort.Slice(groupShares, func(a, b int) bool { return groupShares[a].X < groupShares[b].X })
	ems, err := shamir.Combine(groupShares[:gt])
	if err != nil {
		return nil, err
	}
	emsBuf := secure.FromSlice(ems)
	secure.Zero(ems)
	defer emsBuf.Destroy()

	params := feistel.Params{
		Identifier:        first.Identifier,
		IterationExponent: int(first.IterationExponent),
		Extendable:        first.Extendable,
	}
	return feistel.Decrypt(emsBuf.Bytes(), passphrase, params)
}
