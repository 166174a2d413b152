package params

// Physical constants for unit conversion. Internally everything is SI:
// energies in Joule, dipole moments in C·m, field strengths in V/m.
const (
	planck     = 6.62606957e-34 // J s
	lightSpeed = 299792458.0    // m/s
	debye      = 1e-21 / lightSpeed
)

// Hz2J converts a frequency in Hz to an energy in J.
func Hz2J(f float64) float64 { return planck * f }

// J2Hz converts an energy in J to a frequency in Hz.
func J2Hz(e float64) float64 { return e / planck }

// MHz2J converts a frequency in MHz to an energy in J.
func MHz2J(f float64) float64 { return Hz2J(f * 1e6) }

// InvCm2J converts a wavenumber in cm^-1 to an energy in J.
func InvCm2J(nu float64) float64 { return planck * lightSpeed * 100 * nu }

// D2Cm converts a dipole moment in Debye to C·m.
func D2Cm(d float64) float64 { return d * debye }

// Cm2D converts a dipole moment in C·m to Debye.
func Cm2D(cm float64) float64 { return cm / debye }

// KVcm2Vm converts a field strength in kV/cm to V/m.
func KVcm2Vm(f float64) float64 { return f * 1e5 }

// Vm2KVcm converts a field strength in V/m to kV/cm.
func Vm2KVcm(f float64) float64 { return f / 1e5 }

func hz2JSlice(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = Hz2J(v)
	}
	return out
}

func d2CmSlice(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = D2Cm(v)
	}
	return out
}

// FieldGrid returns n equally spaced field strengths from lo to hi
// inclusive, in V/m. n must be at least 2.
func FieldGrid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
