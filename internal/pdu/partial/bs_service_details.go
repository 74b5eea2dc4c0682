package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// BSServiceDetails is D-MLE-SYSINFO's 12-bit service-capability bitmap
// (8 flags, a reserved bit, then 3 more flags).
type BSServiceDetails struct {
	RegistrationRequired          bool
	DeregistrationRequired        bool
	PriorityCell                  bool
	CellNeverUsesMinimumMode      bool
	Migration                     bool
	SystemWideServices            bool
	TetraVoiceService             bool
	CircuitModeDataService        bool
	SNDCPService                  bool
	AirInterfaceEncryptionService bool
	AdvancedLinkSupported         bool
}

func DecodeBSServiceDetails(r *codec.Reader) BSServiceDetails {
	d := BSServiceDetails{
		RegistrationRequired:     r.ReadBool(),
		DeregistrationRequired:   r.ReadBool(),
		PriorityCell:             r.ReadBool(),
		CellNeverUsesMinimumMode: r.ReadBool(),
		Migration:                r.ReadBool(),
		SystemWideServices:       r.ReadBool(),
		TetraVoiceService:        r.ReadBool(),
		CircuitModeDataService:   r.ReadBool(),
	}
	r.ReadBool() // reserved
	d.SNDCPService = r.ReadBool()
	d.AirInterfaceEncryptionService = r.ReadBool()
	d.AdvancedLinkSupported = r.ReadBool()
	return d
}

func (d BSServiceDetails) Encode(w *codec.Writer) {
	w.WriteBool(d.RegistrationRequired)
	w.WriteBool(d.DeregistrationRequired)
	w.WriteBool(d.PriorityCell)
	w.WriteBool(d.CellNeverUsesMinimumMode)
	w.WriteBool(d.Migration)
	w.WriteBool(d.SystemWideServices)
	w.WriteBool(d.TetraVoiceService)
	w.WriteBool(d.CircuitModeDataService)
	w.WriteBool(false) // reserved
	w.WriteBool(d.SNDCPService)
	w.WriteBool(d.AirInterfaceEncryptionService)
	w.WriteBool(d.AdvancedLinkSupported)
}
