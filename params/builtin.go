package params

import (
	"fmt"

	"github.com/starklab/starkgo/rotor"
)

// Atomic masses in u for composing molecular masses.
var atomMass = map[string]float64{
	"H": 1.0078250321,
	"D": 2.01410178,
	"C": 12,
	"N": 14.0030740052,
	"O": 15.9949146221,
	"S": 31.97207070,
	"I": 126.90447,
}

func unknownIsomer(name string, isomer int) error {
	return fmt.Errorf("molecule %s has no isomer %d", name, isomer)
}

func init() {
	Register("water", water)
	Register("OCS", ocs)
	Register("iodomethane", iodomethane)
	Register("benzonitrile", benzonitrile)
	Register("indole", indole)
	Register("iodobenzene", iodobenzene)
	Register("4-aminobenzonitrile", aminobenzonitrile)
	Register("3-aminophenol", aminophenol)
}

// water covers H2O (isomer 0), D2O (1) and HDO (2).
//
// Inertial parameters: De Lucia et al., Phys. Rev. A 5, 487 (1972);
// Steenbeckeliers & Bellet, J. Mol. Spectrosc. 45, 10 (1973); De Lucia et
// al., J. Chem. Phys. 55, 5334 (1971). Dipole moments: Shostak, Ebenstein
// & Muenter, J. Chem. Phys. 94, 5875 (1991); Clough et al., J. Chem.
// Phys. 59, 2254 (1973).
func water(isomer int) (rotor.Parameter, error) {
	p := rotor.Parameter{
		Name:   "water",
		Isomer: isomer,
		Type:   rotor.Asymmetric,
		Watson: "A",
	}
	switch isomer {
	case 0:
		p.Mass = atomMass["O"] + 2*atomMass["H"]
		p.Symmetry = "C2b"
		p.RotCon = hz2JSlice([]float64{835840.29e6, 435351.72e6, 278138.7e6})
		p.Quartic = hz2JSlice([]float64{37.594e6, -172.91e6, 973.29e6, 15.210e6, 41.05e6})
		p.Dipole = d2CmSlice([]float64{0, -1.857, 0})
	case 1:
		p.Mass = atomMass["O"] + 2*atomMass["D"]
		p.Symmetry = "C2b"
		p.RotCon = hz2JSlice([]float64{462278.854e6, 218038.233e6, 145258.022e6})
		p.Dipole = d2CmSlice([]float64{0, -1.8558, 0})
	case 2:
		p.Mass = atomMass["O"] + atomMass["H"] + atomMass["D"]
		p.Symmetry = "N"
		p.RotCon = hz2JSlice([]float64{701931.50e6, 272912.60e6, 192055.25e6})
		p.Quartic = hz2JSlice([]float64{10.8375e6, 34.208e6, 377.078e6, 3.6471e6, 63.087e6})
		p.Dipole = d2CmSlice([]float64{-0.6591, -1.7304, 0})
	default:
		return rotor.Parameter{}, unknownIsomer("water", isomer)
	}
	return p, nil
}

// ocs exposes the same constants through all three rotor Hamiltonians:
// linear (isomer 0), symmetric (1) and asymmetric (2).
//
// Constants: NIST triatomic spectral database (2012); Reinartz & Dymanus,
// Chem. Phys. Lett. 24, 346 (1974).
func ocs(isomer int) (rotor.Parameter, error) {
	p := rotor.Parameter{
		Name:   "OCS",
		Mass:   atomMass["O"] + atomMass["C"] + atomMass["S"],
		Isomer: isomer,
	}
	switch isomer {
	case 0:
		p.Type = rotor.Linear
		p.Symmetry = "N"
		p.RotCon = hz2JSlice([]float64{6.081492475e9})
		p.Quartic = hz2JSlice([]float64{1.301777e3})
		p.Dipole = d2CmSlice([]float64{0.71519})
	case 1:
		p.Type = rotor.Symmetric
		p.Symmetry = "N"
		p.RotCon = hz2JSlice([]float64{1e15, 6.081492475e9})
		p.Quartic = hz2JSlice([]float64{1.301777e3, 0, 0})
		p.Dipole = d2CmSlice([]float64{0.71519})
	case 2:
		p.Type = rotor.Asymmetric
		p.Symmetry = "C2a"
		p.RotCon = hz2JSlice([]float64{1e15, 6.081492475e9, 6.081492475e9})
		p.Quartic = hz2JSlice([]float64{1.301777e3, 0, 0, 0, 0})
		p.Dipole = d2CmSlice([]float64{0.71519, 0, 0})
	default:
		return rotor.Parameter{}, unknownIsomer("OCS", isomer)
	}
	return p, nil
}

// iodomethane as symmetric top (isomer 0) or asymmetric top (1).
//
// Constants: Wlodarczak et al., J. Mol. Spectrosc. 124, 53 (1987); Gadhi
// et al., Chem. Phys. Lett. 156, 401 (1989).
func iodomethane(isomer int) (rotor.Parameter, error) {
	a := J2Hz(InvCm2J(5.17340))
	p := rotor.Parameter{
		Name:   "iodomethane",
		Mass:   3*atomMass["H"] + atomMass["C"] + atomMass["I"],
		Isomer: isomer,
	}
	switch isomer {
	case 0:
		p.Type = rotor.Symmetric
		p.Symmetry = "N"
		p.RotCon = hz2JSlice([]float64{a, 7501.2757456e6})
		p.Quartic = hz2JSlice([]float64{6.307583e3, 98.76798e3, 0})
		p.Dipole = d2CmSlice([]float64{1.6406})
	case 1:
		p.Type = rotor.Asymmetric
		p.Symmetry = "C2a"
		p.RotCon = hz2JSlice([]float64{a, 7501.2757456e6, 7501.2757456e6})
		p.Quartic = hz2JSlice([]float64{6.307583e3, 98.76798e3, 0, 0, 0})
		p.Dipole = d2CmSlice([]float64{1.6406, 0, 0})
	default:
		return rotor.Parameter{}, unknownIsomer("iodomethane", isomer)
	}
	return p, nil
}

// benzonitrile. Wohlfart, Schnell, Grabow & Küpper, J. Mol. Spectrosc.
// 247, 119 (2008).
func benzonitrile(isomer int) (rotor.Parameter, error) {
	if isomer != 0 {
		return rotor.Parameter{}, unknownIsomer("benzonitrile", isomer)
	}
	return rotor.Parameter{
		Name:     "benzonitrile",
		Mass:     7*atomMass["C"] + atomMass["N"] + 5*atomMass["H"],
		Type:     rotor.Asymmetric,
		Watson:   "A",
		Symmetry: "C2a",
		RotCon:   hz2JSlice([]float64{5655.2654e6, 1546.875864e6, 1214.40399e6}),
		Quartic:  hz2JSlice([]float64{45.6, 938.1, 500, 10.95, 628}),
		Dipole:   d2CmSlice([]float64{4.5152, 0, 0}),
	}, nil
}

// indole. Isomer 0: Kang, Korter & Pratt, J. Chem. Phys. 122, 174301
// (2005). Isomer 1 adds the quartic constants of Caminati & Dibernardo,
// J. Mol. Struct. 240, 253 (1990).
func indole(isomer int) (rotor.Parameter, error) {
	p := rotor.Parameter{
		Name:     "indole",
		Mass:     8*atomMass["C"] + atomMass["N"] + 7*atomMass["H"],
		Isomer:   isomer,
		Type:     rotor.Asymmetric,
		Watson:   "A",
		Symmetry: "N",
		Dipole:   d2CmSlice([]float64{1.376, 1.400, 0}),
	}
	switch isomer {
	case 0:
		p.RotCon = hz2JSlice([]float64{3877.9e6, 1636.1e6, 1150.9e6})
	case 1:
		p.RotCon = hz2JSlice([]float64{3877.826e6, 1636.047e6, 1150.8997e6})
		p.Quartic = hz2JSlice([]float64{0.0352e3, 0.042e3, 0.16e3, 0.1005e3, 0.128e3})
	default:
		return rotor.Parameter{}, unknownIsomer("indole", isomer)
	}
	return p, nil
}

// iodobenzene. Dorosh et al., J. Mol. Spectrosc. 246, 228 (2007).
// The published sextic constants are ignored.
func iodobenzene(isomer int) (rotor.Parameter, error) {
	if isomer != 0 {
		return rotor.Parameter{}, unknownIsomer("iodobenzene", isomer)
	}
	return rotor.Parameter{
		Name:     "iodobenzene",
		Mass:     6*atomMass["C"] + 5*atomMass["H"] + atomMass["I"],
		Type:     rotor.Asymmetric,
		Watson:   "A",
		Symmetry: "C2a",
		RotCon:   hz2JSlice([]float64{5669.126e6, 750.414323e6, 662.636162e6}),
		Quartic:  hz2JSlice([]float64{19.5479, 164.648, 891, 2.53098, 15554}),
		Dipole:   d2CmSlice([]float64{1.6250, 0, 0}),
	}, nil
}

// aminobenzonitrile. Borst et al., Chem. Phys. Lett. 350, 485 (2001).
func aminobenzonitrile(isomer int) (rotor.Parameter, error) {
	if isomer != 0 {
		return rotor.Parameter{}, unknownIsomer("4-aminobenzonitrile", isomer)
	}
	return rotor.Parameter{
		Name:     "4-aminobenzonitrile",
		Mass:     7*atomMass["C"] + 6*atomMass["H"] + 2*atomMass["N"],
		Type:     rotor.Asymmetric,
		Watson:   "A",
		Symmetry: "C2a",
		RotCon:   hz2JSlice([]float64{5.5793e9, 0.99026e9, 0.84139e9}),
		Quartic:  hz2JSlice([]float64{0, 0, 0, 0, 0}),
		Dipole:   d2CmSlice([]float64{6.41, 0, 0}),
	}, nil
}

// aminophenol covers the cis (even isomers) and trans (odd isomers)
// conformers of 3-aminophenol: experimental values from Filsinger et al.,
// PCCP 10, 666 (2008) for isomers 0/1, MP2 and B3LYP calculated values
// for isomers 2-5.
func aminophenol(isomer int) (rotor.Parameter, error) {
	p := rotor.Parameter{
		Name:     "3-aminophenol",
		Mass:     6*atomMass["C"] + 7*atomMass["H"] + atomMass["N"] + atomMass["O"],
		Isomer:   isomer,
		Type:     rotor.Asymmetric,
		Watson:   "A",
		Symmetry: "N",
	}
	switch isomer {
	case 0:
		p.RotCon = hz2JSlice([]float64{3734.93e6, 1823.2095e6, 1226.493e6})
		p.Dipole = d2CmSlice([]float64{1.7718, 1.517, 0})
	case 1:
		p.RotCon = hz2JSlice([]float64{3730.1676e6, 1828.25774e6, 1228.1948e6})
		p.Dipole = d2CmSlice([]float64{0.5563, 0.5375, 0})
	case 2:
		p.RotCon = hz2JSlice([]float64{3748.0923e6, 1824.5812e6, 1228.7585e6})
		p.Dipole = d2CmSlice([]float64{1.793, 1.4396, 0})
	case 3:
		p.RotCon = hz2JSlice([]float64{3736.8454e6, 1831.7399e6, 1230.7259e6})
		p.Dipole = d2CmSlice([]float64{0.3953, 0.8203, 0})
	case 4:
		p.RotCon = hz2JSlice([]float64{3755.0444e6, 1828.9366e6, 1231.0926e6})
		p.Dipole = d2CmSlice([]float64{1.8575, 1.6484, 0})
	case 5:
		p.RotCon = hz2JSlice([]float64{3752.3419e6, 1833.1737e6, 1232.6659e6})
		p.Dipole = d2CmSlice([]float64{0.5705, 0.4771, 0})
	default:
		return rotor.Parameter{}, unknownIsomer("3-aminophenol", isomer)
	}
	return p, nil
}
