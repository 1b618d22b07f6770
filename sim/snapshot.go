package sim

import (
	"fmt"

	"github.com/hashicorp/go-msgpack/v2/codec"
)

// Snapshot wire format. Hosts that keep snapshots in memory can copy the
// State value directly; the msgpack encoding is for persistence and for
// shipping authoritative state to late joiners.

var snapshotHandle = &codec.MsgpackHandle{}

// MarshalSnapshot encodes the current state as msgpack.
func (s *Sim) MarshalSnapshot() ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, snapshotHandle)
	if err := enc.Encode(s.state); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf, nil
}

// UnmarshalSnapshot decodes a msgpack snapshot and restores it. Decode
// failures and incompatible snapshots both report ErrSnapshotMismatch.
func (s *Sim) UnmarshalSnapshot(data []byte) error {
	var st State
	dec := codec.NewDecoderBytes(data, snapshotHandle)
	if err := dec.Decode(&st); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrSnapshotMismatch, err)
	}
	return s.Restore(st)
}
