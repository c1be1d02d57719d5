// Command-level documentation for the fresub module lives in
// cmd/fresub. Package fresub itself holds no exported surface; it
// exists only so `go doc github.com/MyskYko/fresub` has somewhere to
// point, following the root doc.go every package in this module
// carries.
//
// fresub is an And-Inverter Graph resubstitution optimizer: it reads
// a combinational AIG from an AIGER file, enumerates bounded windows
// around each gate, tests whether the gate (or the redundant part of
// its cone) can be re-expressed using gates already available inside
// the window, synthesizes a smaller replacement when one exists, and
// splices it in, all while preserving the function of every primary
// output. See the aig, aig/resub, and aiger packages for the pieces,
// and cmd/fresub for the command line tool that drives them.
package fresub
