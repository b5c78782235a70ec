// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"fmt"
	"math/bits"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/movetx/codec"
)

const (
	// MaxMultiKeys bounds the number of keys in a MultiPublicKey.
	MaxMultiKeys = 32
	// BitmapLen is the size of the signer bitmap in a MultiSignature.
	BitmapLen = 4
)

// MultiPublicKey is a K-of-N public key: the N keys followed by the
// threshold K.
type MultiPublicKey struct {
	Keys      []PublicKey
	Threshold uint8
}

func NewMultiPublicKey(keys []PublicKey, threshold uint8) (*MultiPublicKey, error) {
	pk := &MultiPublicKey{Keys: keys, Threshold: threshold}
	if err := pk.Verify(); err != nil {
		return nil, err
	}
	return pk, nil
}

// Verify checks the key count and threshold.
func (m *MultiPublicKey) Verify() error {
	if len(m.Keys) == 0 || len(m.Keys) > MaxMultiKeys {
		return fmt.Errorf("%w: %d", ErrTooManyKeys, len(m.Keys))
	}
	if m.Threshold == 0 || int(m.Threshold) > len(m.Keys) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidThreshold, m.Threshold, len(m.Keys))
	}
	return nil
}

// Bytes returns pk_1 || ... || pk_n || threshold.
func (m *MultiPublicKey) Bytes() []byte {
	b := make([]byte, 0, len(m.Keys)*PublicKeyLen+1)
	for _, k := range m.Keys {
		b = append(b, k[:]...)
	}
	return append(b, m.Threshold)
}

func (m *MultiPublicKey) Serialize(s *codec.Serializer) {
	s.SerializeBytes(m.Bytes())
}

func DeserializeMultiPublicKey(d *codec.Deserializer) *MultiPublicKey {
	b := d.DeserializeBytes()
	if d.Err() != nil {
		return nil
	}
	if len(b) == 0 || (len(b)-1)%PublicKeyLen != 0 {
		d.SetErr(fmt.Errorf("%w: multi key of %d bytes", ErrInvalidPublicKey, len(b)))
		return nil
	}
	n := (len(b) - 1) / PublicKeyLen
	m := &MultiPublicKey{
		Keys:      make([]PublicKey, n),
		Threshold: b[len(b)-1],
	}
	for i := range m.Keys {
		copy(m.Keys[i][:], b[i*PublicKeyLen:])
	}
	if err := m.Verify(); err != nil {
		d.SetErr(err)
		return nil
	}
	return m
}

// MultiSignature carries the signatures of the participating keys in
// ascending key index order and a bitmap of those indices.
type MultiSignature struct {
	Signatures []Signature
	Bitmap     [BitmapLen]byte
}

// CreateBitmap sets bit i for every index, most significant bit first
// within each byte.
func CreateBitmap(indices []int) ([BitmapLen]byte, error) {
	var bitmap [BitmapLen]byte
	seen := set.NewSet[int](len(indices))
	for _, i := range indices {
		if i < 0 || i >= MaxMultiKeys {
			return bitmap, fmt.Errorf("%w: index %d", ErrInvalidBitmap, i)
		}
		if seen.Contains(i) {
			return bitmap, fmt.Errorf("%w: index %d", ErrDuplicateSigner, i)
		}
		seen.Add(i)
		bitmap[i/8] |= 128 >> (i % 8)
	}
	return bitmap, nil
}

// BitmapIndices returns the set indices in ascending order.
func BitmapIndices(bitmap [BitmapLen]byte) []int {
	var indices []int
	for i := 0; i < MaxMultiKeys; i++ {
		if bitmap[i/8]&(128>>(i%8)) != 0 {
			indices = append(indices, i)
		}
	}
	return indices
}

func bitmapCount(bitmap [BitmapLen]byte) int {
	n := 0
	for _, b := range bitmap {
		n += bits.OnesCount8(b)
	}
	return n
}

// SignMulti signs msg with each (index, key) pair and returns the
// aggregated signature. The pairs may be given in any order.
func SignMulti(msg []byte, keys map[int]PrivateKey) (*MultiSignature, error) {
	indices := make([]int, 0, len(keys))
	for i := range keys {
		indices = append(indices, i)
	}
	bitmap, err := CreateBitmap(indices)
	if err != nil {
		return nil, err
	}
	ordered := BitmapIndices(bitmap)
	sig := &MultiSignature{
		Signatures: make([]Signature, 0, len(ordered)),
		Bitmap:     bitmap,
	}
	for _, i := range ordered {
		sig.Signatures = append(sig.Signatures, Sign(msg, keys[i]))
	}
	return sig, nil
}

// Bytes returns sig_1 || ... || sig_k || bitmap.
func (m *MultiSignature) Bytes() []byte {
	b := make([]byte, 0, len(m.Signatures)*SignatureLen+BitmapLen)
	for _, s := range m.Signatures {
		b = append(b, s[:]...)
	}
	return append(b, m.Bitmap[:]...)
}

func (m *MultiSignature) Serialize(s *codec.Serializer) {
	s.SerializeBytes(m.Bytes())
}

func DeserializeMultiSignature(d *codec.Deserializer) *MultiSignature {
	b := d.DeserializeBytes()
	if d.Err() != nil {
		return nil
	}
	if len(b) < BitmapLen || (len(b)-BitmapLen)%SignatureLen != 0 {
		d.SetErr(fmt.Errorf("%w: multi signature of %d bytes", ErrInvalidSignature, len(b)))
		return nil
	}
	n := (len(b) - BitmapLen) / SignatureLen
	m := &MultiSignature{Signatures: make([]Signature, n)}
	for i := range m.Signatures {
		copy(m.Signatures[i][:], b[i*SignatureLen:])
	}
	copy(m.Bitmap[:], b[n*SignatureLen:])
	if bitmapCount(m.Bitmap) != n {
		d.SetErr(fmt.Errorf("%w: %d signatures for %d bits", ErrInvalidBitmap, n, bitmapCount(m.Bitmap)))
		return nil
	}
	return m
}

// VerifyMulti returns whether sig carries at least pk.Threshold valid
// signatures of msg from the keys named by its bitmap.
func VerifyMulti(msg []byte, pk *MultiPublicKey, sig *MultiSignature) bool {
	indices := BitmapIndices(sig.Bitmap)
	if len(indices) != len(sig.Signatures) || len(indices) < int(pk.Threshold) {
		return false
	}
	batch := NewBatch(len(indices))
	for j, i := range indices {
		if i >= len(pk.Keys) {
			return false
		}
		batch.Add(msg, pk.Keys[i], sig.Signatures[j])
	}
	return batch.Verify()
}
