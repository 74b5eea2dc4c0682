package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// EncryptionMode is MAC-RESOURCE's 2-bit air interface encryption state.
type EncryptionMode int

const (
	NotEncrypted EncryptionMode = iota
	EncryptedA
	EncryptedB
	EncryptedC
)

func DecodeEncryptionMode(r *codec.Reader) EncryptionMode {
	return EncryptionMode(r.ReadInt(2))
}

func (e EncryptionMode) Encode(w *codec.Writer) {
	w.WriteInt(uint32(e), 2)
}
