// Package starkgo computes and persists Stark-effect energy curves of
// molecular rotors: eigenenergies as a function of applied electric field,
// keyed by quantum state.
//
// A Molecule owns one storage file. Curves are written incrementally:
// newly computed field/energy samples merge into whatever is already
// stored, so a field grid can be refined over several runs without losing
// earlier data.
//
// # Quick Start
//
// Run a sweep and store the curves:
//
//	param, _ := params.Lookup("OCS", 0)
//	mol, _ := starkgo.Open("ocs.stark")
//	defer mol.Close()
//	_ = mol.Calculate(ctx, rotor.PerturbativeLinear(), param)
//
// Read a stored curve back:
//
//	s, _ := state.New(1, 0, 1, 0, 0)
//	c, _ := mol.StarkEffect(s)
//	mueff, _ := mol.EffectiveDipole(s)
//
// # Durability Model
//
// Writes accumulate in memory and become durable on Flush, which rewrites
// the storage file atomically. Calculate flushes after every completed M
// sweep, so an interrupted run keeps all finished sweeps. Close flushes
// pending writes before releasing the handle.
//
// # Key Features
//
//   - Positional state ids and filesystem-safe storage paths
//   - Merge-on-write curves: refine field grids across runs
//   - Self-describing single-file format with checksummed, compressed body
//   - Effective dipole moments by finite differences
//   - Archive backends for backup to local, S3 or MinIO storage
package starkgo
