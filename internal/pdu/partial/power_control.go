package partial

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

// PowerControlKind distinguishes PowerControl's non-step special values.
type PowerControlKind int

const (
	PowerNoChange PowerControlKind = iota
	PowerIncreaseBySteps
	PowerMaximumPathDelayExceeded
	PowerOpenLoop
	PowerDecreaseBySteps
	PowerRadioUplinkFailure
)

// PowerControl is the MAC-RESOURCE power-control element.
type PowerControl struct {
	Kind  PowerControlKind
	Steps uint32 // populated for PowerIncreaseBySteps/PowerDecreaseBySteps
}

func DecodePowerControl(r *codec.Reader) PowerControl {
	v := r.ReadInt(4)
	switch {
	case v == 0b0000:
		return PowerControl{Kind: PowerNoChange}
	case v >= 0b0001 && v <= 0b0110:
		return PowerControl{Kind: PowerIncreaseBySteps, Steps: v}
	case v == 0b0111:
		return PowerControl{Kind: PowerMaximumPathDelayExceeded}
	case v == 0b1000:
		return PowerControl{Kind: PowerOpenLoop}
	case v >= 0b1001 && v <= 0b1110:
		return PowerControl{Kind: PowerDecreaseBySteps, Steps: v - 8}
	case v == 0b1111:
		return PowerControl{Kind: PowerRadioUplinkFailure}
	default:
		panic(fmt.Sprintf("partial: unknown power control value %d", v))
	}
}

func (p PowerControl) Encode(w *codec.Writer) {
	switch p.Kind {
	case PowerNoChange:
		w.WriteInt(0b0000, 4)
	case PowerIncreaseBySteps:
		w.WriteInt(p.Steps, 4)
	case PowerMaximumPathDelayExceeded:
		w.WriteInt(0b0111, 4)
	case PowerOpenLoop:
		w.WriteInt(0b1000, 4)
	case PowerDecreaseBySteps:
		w.WriteInt(p.Steps+8, 4)
	case PowerRadioUplinkFailure:
		w.WriteInt(0b1111, 4)
	default:
		panic(fmt.Sprintf("partial: unknown power control kind %d", p.Kind))
	}
}
