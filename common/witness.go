package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrHostWitnessFailed appears when the method must be called
	// by the host but was not.
	ErrHostWitnessFailed = "host witness check failed"
	// ErrRetirerWitnessFailed appears when the method must be called
	// by the retirer but was not.
	ErrRetirerWitnessFailed = "retirer witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// by a certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckHostWitness checks witness of the passed caller.
// It panics with ErrHostWitnessFailed message on fail.
func CheckHostWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrHostWitnessFailed)
}

// CheckRetirerWitness checks witness of the passed caller.
// It panics with ErrRetirerWitnessFailed message on fail.
func CheckRetirerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrRetirerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
