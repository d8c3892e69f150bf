package strategy

import "github.com/yschiang/sampling-wizard/sampling"

// init wires the selection engines into the sampling registry. It runs when
// any package imports sampling/strategy, keeping the sampling package
// (interface owner) free of engine imports.
func init() {
	sampling.Register(CenterEdge{})
	sampling.Register(GridUniform{})
	sampling.Register(EdgeOnly{})
	sampling.Register(ZoneRingN{})
}
