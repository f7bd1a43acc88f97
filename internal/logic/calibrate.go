package logic

// Percent maps a raw reading onto the dry/wet calibration references and
// returns a moisture percentage clamped to [0,100]. The dry reference maps
// to 0% and the wet reference to 100%; the interpolation direction is
// derived from the two references, so sensors that read high-when-dry and
// sensors that read low-when-dry both work.
//
// Equal references are a degenerate calibration: the mapping returns 0
// rather than divide by zero. Note that 0% reads as bone-dry, so a
// degenerate zone will keep asking for water until the max-on cutoff
// stops it (see config.Validate, which warns about this at load).
func Percent(raw, dry, wet int) int {
	if dry == wet {
		return 0
	}
	p := float64(raw-dry) * 100 / float64(wet-dry)
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return int(p + 0.5)
}
