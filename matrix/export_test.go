// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot exposes the resolved options to the external tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot applies opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}
