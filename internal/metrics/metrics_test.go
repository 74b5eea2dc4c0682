package metrics

import (
	"context"
	"testing"
	"time"
)

func TestRecordMethodsDoNotPanic(t *testing.T) {
	m := NewMetrics()
	m.RecordBurst("sync")
	m.RecordBurst("normal")
	m.RecordFECFailure("block_crc")
	m.RecordChannelEncode("SignallingHalfDownlink", 0.001)
}

func TestServerDisabledReturnsImmediately(t *testing.T) {
	s := NewServer(false, 0, "/metrics", nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start on disabled server returned error: %v", err)
	}
}
